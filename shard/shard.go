package shard

import (
	"sync"

	"github.com/krisalay/mind-reader/eviction"
)

/*
A Shard is a small, independent piece of a cache. Each shard:
- Holds some portion of the entries
- Has its own eviction bookkeeping
- Has its own lock

Every operation on Store or Eviction, reads included, must hold Mu: a hit
moves the key in the LRU order, so even lookups mutate shard state.
*/
type Shard[V any] struct {
	Store    Store[V]
	Eviction eviction.Policy
	Mu       sync.Mutex
}

func NewShard[V any](ev eviction.Policy) *Shard[V] {
	return &Shard[V]{
		Store:    NewMapStore[V](),
		Eviction: ev,
	}
}
