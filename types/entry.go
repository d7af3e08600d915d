package types

import "time"

/*
CacheEntry is one cached producer result together with the moment it was produced.

An entry is never changed after it is built. A refresh builds a new entry and
replaces the old one in the store, so readers holding the old pointer keep a
consistent view.
*/
type CacheEntry[V any] struct {
	Value     V
	CreatedAt time.Time
}

// NewEntry wraps value with the given creation time.
func NewEntry[V any](value V, now time.Time) *CacheEntry[V] {
	return &CacheEntry[V]{Value: value, CreatedAt: now}
}

// IsFresh reports whether the entry is still valid at now: now - CreatedAt < ttl.
// A non-positive ttl makes every entry stale.
func (e *CacheEntry[V]) IsFresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.CreatedAt) < ttl
}
