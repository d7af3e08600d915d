package cache

import (
	"context"
	"time"

	"github.com/krisalay/mind-reader/keys"
	"github.com/krisalay/mind-reader/policy"
)

// ComputeFunc produces the value for a key on a miss.
type ComputeFunc[V any] func(ctx context.Context) (V, error)

/*
Cache defines the PUBLIC API of an expiring cache.
Sharding, eviction, expiry checks and single-flight loading stay behind it.
*/
type Cache[V any] interface {

	/*
		GetOrCompute returns the value cached under key.

		BEHAVIOR:
		-------------------
		1. If the key holds a fresh entry:
		   - Return it; compute is NOT called (cache hit)

		2. If the key is absent or its entry is stale:
		   - Call compute exactly once, even under concurrent callers
		   - Store the result, replacing any stale entry
		   - Return it (cache miss)

		3. If compute fails:
		   - Return its error unchanged
		   - Store nothing, so the next call tries again
	*/
	GetOrCompute(ctx context.Context, key keys.Key, compute ComputeFunc[V]) (V, error)

	/*
		Peek returns a fresh value without computing anything.
		It does not count as a use for LRU ordering and records no metrics.
	*/
	Peek(key keys.Key) (V, bool)

	// Len returns the number of stored entries, stale ones included.
	Len() int

	// Kind returns the policy the cache was built with.
	Kind() policy.Kind

	// TTL returns how long entries stay fresh.
	TTL() time.Duration
}
