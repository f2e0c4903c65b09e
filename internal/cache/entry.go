package cache

import "time"

// Entry is the persisted envelope for a single cached dataset.
// Timestamp and ExpiresAt are epoch milliseconds; ExpiresAt is always
// strictly greater than Timestamp. An entry is superseded wholesale on
// every write to its key, never merged.
type Entry struct {
	Key       string `json:"key"`
	Data      []byte `json:"data"`
	Timestamp int64  `json:"timestamp"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Expired reports whether the entry is past its expiry at the given time.
func (e *Entry) Expired(now time.Time) bool {
	return now.UnixMilli() >= e.ExpiresAt
}

// ExpiresIn returns the remaining freshness window at the given time.
// Returns 0 if the entry is already expired.
func (e *Entry) ExpiresIn(now time.Time) time.Duration {
	remaining := time.Duration(e.ExpiresAt-now.UnixMilli()) * time.Millisecond
	if remaining < 0 {
		return 0
	}
	return remaining
}

func newEntry(key string, data []byte, now time.Time, ttl time.Duration) Entry {
	ms := now.UnixMilli()
	return Entry{
		Key:       key,
		Data:      data,
		Timestamp: ms,
		ExpiresAt: ms + ttl.Milliseconds(),
	}
}
