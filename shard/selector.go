package shard

import "github.com/cespare/xxhash/v2"

/*
This file decides which shard owns a cache key.
Spreading keys evenly keeps any single shard lock from becoming a bottleneck.
*/

// Select returns the shard that owns key. A single shard short-circuits the hash.
func Select[V any](key string, shards []*Shard[V]) *Shard[V] {
	if len(shards) == 1 {
		return shards[0]
	}
	return shards[xxhash.Sum64String(key)%uint64(len(shards))]
}
