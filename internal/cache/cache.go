// Package cache provides a durable get-or-compute cache with per-key
// expiry, backed by a local SQLite database.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Cache struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Cache, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

// NewMemory creates an in-memory cache for testing.
func NewMemory() (*Cache, error) {
	return New(":memory:")
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) migrate() error {
	var version int
	err := c.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := c.migrateV1(); err != nil {
			return err
		}
	}

	_, err = c.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (c *Cache) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS cache_entries (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		expires_at TEXT NOT NULL
	);
	`
	_, err := c.db.Exec(ddl)
	return err
}

// DefaultPath returns ~/.config/harvestctl/cache.db
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "harvestctl", "cache.db"), nil
}

// GetOrCompute returns the cached value for key when it has not expired.
// Otherwise it runs compute, stores the result with the given TTL, and
// returns it. A compute error propagates unchanged and nothing is stored.
func GetOrCompute[T any](c *Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	var zero T

	var raw []byte
	var expiresStr string
	err := c.db.QueryRow(
		`SELECT value, expires_at FROM cache_entries WHERE key = ?`, key,
	).Scan(&raw, &expiresStr)
	switch {
	case err == nil:
		expires, perr := time.Parse(time.RFC3339, expiresStr)
		if perr == nil && time.Now().UTC().Before(expires) {
			var v T
			if jerr := json.Unmarshal(raw, &v); jerr == nil {
				return v, nil
			}
			// An undecodable row is treated as a miss and recomputed.
		}
	case err != sql.ErrNoRows:
		return zero, fmt.Errorf("cache read %q: %w", key, err)
	}

	v, err := compute()
	if err != nil {
		return zero, err
	}

	raw, err = json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("cache encode %q: %w", key, err)
	}
	expires := time.Now().UTC().Add(ttl).Format(time.RFC3339)
	_, err = c.db.Exec(
		`INSERT INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, raw, expires,
	)
	if err != nil {
		return zero, fmt.Errorf("cache write %q: %w", key, err)
	}
	return v, nil
}

// Delete removes a key from the cache. Missing keys are not an error.
func (c *Cache) Delete(key string) error {
	_, err := c.db.Exec(`DELETE FROM cache_entries WHERE key = ?`, key)
	return err
}
