package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotAuthenticated is returned when no usable credentials are stored.
var ErrNotAuthenticated = errors.New("not authenticated")

// Credentials holds the Harvest account ID and personal access token.
type Credentials struct {
	AccountID    string `json:"account-id"`
	AccountToken string `json:"account-token"`
}

// DefaultPath returns ~/.config/harvestctl/auth.json (per-platform).
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "harvestctl", "auth.json"), nil
}

// Load reads credentials from path. A missing file or credentials with an
// empty field mean the user never logged in, reported as
// ErrNotAuthenticated.
func Load(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if creds.AccountID == "" || creds.AccountToken == "" {
		return nil, ErrNotAuthenticated
	}
	return &creds, nil
}

// Save writes credentials to path, creating the parent directory.
func Save(path string, creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
