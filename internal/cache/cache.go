// Package cache provides expiry-aware key-value storage for API responses.
//
// Storage failures never reach the data clients: reads degrade to a miss
// and writes report an error suitable for debug logging only. A caller can
// always proceed as though the cache were empty.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammad-fiaz/portfolio/internal/log"
)

// DefaultTTL is the process-wide freshness window for all cached datasets.
const DefaultTTL = time.Hour

// Logical cache keys. Clear operates only on keys produced here so that
// unrelated rows sharing the same backing store are never disturbed.
const (
	keyRepositories = "repositories"
	keyOwnerProfile = "owner-profile"
	keyReadme       = "readme"

	// KeyCodingStats holds the coding-statistics snapshot (one per process,
	// the tracked identity is fixed by configuration).
	KeyCodingStats = "coding-stats"
)

// RepositoriesKey returns the cache key for an owner's repository collection.
func RepositoriesKey(owner string) string {
	return keyRepositories + ":" + owner
}

// ProfileKey returns the cache key for an owner's profile.
func ProfileKey(owner string) string {
	return keyOwnerProfile + ":" + owner
}

// ReadmeKey returns the cache key for one repository's README document.
func ReadmeKey(owner, repo string) string {
	return keyReadme + ":" + owner + "/" + repo
}

// Keys returns the fixed dataset keys for an owner. Per-repository
// README entries are keyed individually and are not enumerable here.
func Keys(owner string) []string {
	return []string{
		RepositoriesKey(owner),
		ProfileKey(owner),
		KeyCodingStats,
	}
}

// Store is the persistent cache boundary shared by all data clients.
// Implementations are interchangeable; the clients depend only on this
// interface.
type Store interface {
	// Get returns the payload for key if an entry exists and is still
	// fresh. Reading an expired entry deletes it as a side effect.
	Get(ctx context.Context, key string) ([]byte, bool)

	// GetStale returns the payload for key regardless of freshness.
	// Used only on the fallback path after a failed fetch.
	GetStale(ctx context.Context, key string) ([]byte, bool)

	// Info returns the full envelope for key regardless of freshness,
	// for cache inspection. No eviction side effects.
	Info(ctx context.Context, key string) (*Entry, bool)

	// Set writes a new entry for key, unconditionally replacing any
	// prior entry. The returned error is advisory; callers log and
	// continue.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key if present.
	Delete(ctx context.Context, key string) error

	// Clear removes the given keys. A no-op for keys with no entry.
	Clear(ctx context.Context, keys ...string) error
}

// GetJSON reads key from the store and unmarshals it into T. Only a
// fresh entry is a hit; a corrupted payload counts as a miss. Freshness
// is checked via Info rather than Get, so an expired entry stays in
// place for a later GetStaleJSON fallback read.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool) {
	var v T
	entry, ok := s.Info(ctx, key)
	if !ok || entry.Expired(time.Now()) {
		return v, false
	}
	if err := json.Unmarshal(entry.Data, &v); err != nil {
		log.Debug("cache entry corrupted, treating as miss", "key", key, "error", err)
		return v, false
	}
	return v, true
}

// GetStaleJSON is GetJSON over GetStale.
func GetStaleJSON[T any](ctx context.Context, s Store, key string) (T, bool) {
	var v T
	data, ok := s.GetStale(ctx, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		log.Debug("stale cache entry corrupted, treating as miss", "key", key, "error", err)
		return v, false
	}
	return v, true
}

// SetJSON marshals v and writes it under key with the given TTL.
func SetJSON[T any](ctx context.Context, s Store, key string, v T, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data, ttl)
}
