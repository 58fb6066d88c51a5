package nandoku

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CacheTTL is how long a stored distractor set stays fresh. The value is
// generous because distractors for a place name never change meaningfully.
const CacheTTL = 28 * 24 * time.Hour

// Cache is a durable distractor store keyed by place name. Entries are
// overwritten last-writer-wins; concurrent writers for the same name race
// harmlessly since any valid distractor set is interchangeable.
type Cache struct {
	db    *sql.DB
	table string
}

// OpenCache opens (and if necessary creates) the cache table in the given
// SQLite database.
func OpenCache(dbPath, table string) (*Cache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	c := &Cache{db: db, table: table}
	if err := c.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createTable() error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		cache_key TEXT PRIMARY KEY,
		options TEXT NOT NULL,
		expires_at INTEGER NOT NULL
	)`, c.table)
	if _, err := c.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create cache table: %w", err)
	}
	return nil
}

// CacheKey derives the storage key for a place name: the SHA-256 hex
// digest of its UTF-8 bytes. Same name, same key, always.
func CacheKey(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached distractors for a place name, or nil on a
// miss. An expired row counts as a miss and is deleted on the way out
// (lazy TTL; there is no background eviction pass).
func (c *Cache) Lookup(ctx context.Context, name string) ([]string, error) {
	key := CacheKey(name)

	var optionsJSON string
	var expiresAt int64
	err := c.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT options, expires_at FROM %s WHERE cache_key = ?", c.table),
		key,
	).Scan(&optionsJSON, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if expiresAt <= time.Now().Unix() {
		VerboseLog("Cache entry for %q expired, evicting", name)
		if _, err := c.db.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE cache_key = ?", c.table), key); err != nil {
			return nil, fmt.Errorf("failed to evict expired cache entry: %w", err)
		}
		return nil, nil
	}

	options, err := jsonToOptions(optionsJSON)
	if err != nil {
		return nil, err
	}
	return options, nil
}

// Store overwrites the cached distractors for a place name and stamps a
// fresh expiry.
func (c *Cache) Store(ctx context.Context, name string, options []string) error {
	optionsJSON, err := optionsToJSON(options)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(CacheTTL).Unix()
	_, err = c.db.ExecContext(ctx,
		fmt.Sprintf("INSERT OR REPLACE INTO %s (cache_key, options, expires_at) VALUES (?, ?, ?)", c.table),
		CacheKey(name), optionsJSON, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

func optionsToJSON(options []string) (string, error) {
	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to marshal options: %w", err)
	}
	return string(data), nil
}

func jsonToOptions(optionsJSON string) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(optionsJSON), &options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}
	return options, nil
}
