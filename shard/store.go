package shard

import "github.com/krisalay/mind-reader/types"

// Store holds the entries of one shard. It is not safe for concurrent use on
// its own; the owning Shard's mutex guards it.
type Store[V any] interface {
	Get(string) (*types.CacheEntry[V], bool)

	// Put inserts or replaces an entry. Entries are never changed in place.
	Put(string, *types.CacheEntry[V])

	Delete(string)

	Size() int
}

type mapStore[V any] struct {
	data map[string]*types.CacheEntry[V]
}

func NewMapStore[V any]() Store[V] {
	return &mapStore[V]{data: make(map[string]*types.CacheEntry[V])}
}

func (s *mapStore[V]) Get(key string) (*types.CacheEntry[V], bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore[V]) Put(key string, ent *types.CacheEntry[V]) {
	s.data[key] = ent
}

func (s *mapStore[V]) Delete(key string) {
	delete(s.data, key)
}

func (s *mapStore[V]) Size() int {
	return len(s.data)
}
