package cmd

import (
	"errors"
	"fmt"

	"github.com/sadopc/harvestctl/internal/auth"
	"github.com/sadopc/harvestctl/internal/cache"
	"github.com/sadopc/harvestctl/internal/harvest"
)

// session bundles the collaborators a Harvest-backed command needs.
type session struct {
	client *harvest.Client
	cache  *cache.Cache
}

func newSession() (*session, error) {
	authPath, err := auth.DefaultPath()
	if err != nil {
		return nil, err
	}
	creds, err := auth.Load(authPath)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		return nil, fmt.Errorf("not authenticated: run 'harvestctl login' first")
	}
	if err != nil {
		return nil, err
	}

	cachePath, err := cache.DefaultPath()
	if err != nil {
		return nil, err
	}
	c, err := cache.New(cachePath)
	if err != nil {
		return nil, err
	}

	return &session{
		client: harvest.New(creds.AccountID, creds.AccountToken),
		cache:  c,
	}, nil
}

func (s *session) Close() error {
	return s.cache.Close()
}
