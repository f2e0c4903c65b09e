package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/muhammad-fiaz/portfolio/internal/log"
)

// SQLite is a durable Store backend on an embedded database. Entries
// survive across runs within one user profile.
type SQLite struct {
	readDB  *sql.DB
	writeDB *sql.DB
	now     func() time.Time
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the cache database at dbPath.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &SQLite{readDB: readDB, writeDB: writeDB, now: time.Now}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			timestamp  INTEGER NOT NULL,
			expires_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cache_expires ON cache_entries(expires_at);
	`)
	if err != nil {
		return fmt.Errorf("initializing cache schema: %w", err)
	}
	return nil
}

// Close closes both database handles.
func (s *SQLite) Close() error {
	rerr := s.readDB.Close()
	werr := s.writeDB.Close()
	if werr != nil {
		return werr
	}
	return rerr
}

// Get returns the payload for key if fresh. Expired entries are deleted
// on read. Database errors degrade to a miss.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool) {
	var entry Entry
	err := s.readDB.QueryRowContext(ctx,
		`SELECT data, timestamp, expires_at FROM cache_entries WHERE key = ?`, key).
		Scan(&entry.Data, &entry.Timestamp, &entry.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Debug("cache read failed, treating as miss", "key", key, "error", err)
		return nil, false
	}

	if entry.Expired(s.now()) {
		if _, err := s.writeDB.ExecContext(ctx,
			`DELETE FROM cache_entries WHERE key = ?`, key); err != nil {
			log.Debug("failed to evict expired cache entry", "key", key, "error", err)
		}
		return nil, false
	}
	return entry.Data, true
}

// GetStale returns the payload for key regardless of freshness.
func (s *SQLite) GetStale(ctx context.Context, key string) ([]byte, bool) {
	var data []byte
	err := s.readDB.QueryRowContext(ctx,
		`SELECT data FROM cache_entries WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Debug("stale cache read failed, treating as miss", "key", key, "error", err)
		return nil, false
	}
	return data, true
}

// Info returns the envelope for key regardless of freshness.
func (s *SQLite) Info(ctx context.Context, key string) (*Entry, bool) {
	entry := Entry{Key: key}
	err := s.readDB.QueryRowContext(ctx,
		`SELECT data, timestamp, expires_at FROM cache_entries WHERE key = ?`, key).
		Scan(&entry.Data, &entry.Timestamp, &entry.ExpiresAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Debug("cache info read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return &entry, true
}

// Set replaces the entry for key.
func (s *SQLite) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := newEntry(key, data, s.now(), ttl)
	_, err := s.writeDB.ExecContext(ctx, `
		INSERT INTO cache_entries (key, data, timestamp, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			timestamp = excluded.timestamp,
			expires_at = excluded.expires_at
	`, entry.Key, entry.Data, entry.Timestamp, entry.ExpiresAt)
	if err != nil {
		return fmt.Errorf("writing cache entry %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key if present.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := s.writeDB.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting cache entry %q: %w", key, err)
	}
	return nil
}

// Clear removes the given keys only, leaving any unrelated rows intact.
func (s *SQLite) Clear(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?, ", len(keys)-1) + "?"
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	if _, err := s.writeDB.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE key IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("clearing cache entries: %w", err)
	}
	return nil
}
