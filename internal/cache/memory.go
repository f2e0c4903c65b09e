package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a synchronous in-process Store backend. Entries survive for
// the lifetime of the process only. Writes are atomic at single-key
// granularity; last write wins.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Get returns the payload for key if fresh. Expired entries are deleted
// on read.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if entry.Expired(m.now()) {
		delete(m.entries, key)
		return nil, false
	}
	return entry.Data, true
}

// GetStale returns the payload for key regardless of freshness.
func (m *Memory) GetStale(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return entry.Data, true
}

// Info returns the envelope for key regardless of freshness.
func (m *Memory) Info(_ context.Context, key string) (*Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Set replaces the entry for key.
func (m *Memory) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = newEntry(key, data, m.now(), ttl)
	return nil
}

// Delete removes the entry for key if present.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Clear removes the given keys.
func (m *Memory) Clear(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}
