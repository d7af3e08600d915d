package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	api "github.com/krisalay/mind-reader/api"
	"github.com/krisalay/mind-reader/engine"
	"github.com/krisalay/mind-reader/eviction"
	"github.com/krisalay/mind-reader/expiration"
	"github.com/krisalay/mind-reader/keys"
	"github.com/krisalay/mind-reader/policy"
	"github.com/krisalay/mind-reader/shard"
	"github.com/krisalay/mind-reader/types"
	"golang.org/x/sync/singleflight"
)

var _ api.Cache[int] = (*ExpiringCache[int])(nil)

// ErrComputePanic marks a computation that panicked instead of returning.
var ErrComputePanic = errors.New("compute panicked")

/*
ExpiringCache maps keys to timestamped values under one policy.

This struct is the orchestrator that connects:
- shards (storage + eviction bookkeeping, one lock each)
- the engine (expiry rule, clock, metrics, logging)
- singleflight (one computation per key at a time)
*/
type ExpiringCache[V any] struct {
	shards []*shard.Shard[V]
	engine *engine.CacheEngine
	cfg    policy.Config

	// sf makes concurrent misses on the same key share one computation.
	sf singleflight.Group
}

// flight boxes a value so a nil interface V survives the trip through any.
type flight[V any] struct {
	value V
}

// NewExpiringCache builds an empty cache. The configuration is not validated
// here; an invalid capacity is raised to 1 and a non-positive TTL makes every
// entry stale.
func NewExpiringCache[V any](cfg policy.Config, opts ...Option) *ExpiringCache[V] {
	o := buildOptions(opts)

	eng := engine.NewCacheEngine(
		expiration.ExpireAfterWrite{TTL: cfg.TTL},
		o.metrics,
		o.logger.With().Str("policy", cfg.Kind.String()).Logger(),
	)
	eng.Now = o.now

	s := make([]*shard.Shard[V], cfg.ShardCount())
	for i := range s {
		// Each shard gets its own eviction policy instance
		s[i] = shard.NewShard[V](eviction.New(cfg))
	}

	return &ExpiringCache[V]{
		shards: s,
		engine: eng,
		cfg:    cfg,
	}
}

/*
GetOrCompute returns the fresh value under key, or computes, stores and
returns a new one. See api.Cache for the full contract.

The computation keeps the values of the starting caller's context but not its
cancellation, so one caller giving up never fails the others waiting on the
same key. Each caller stops waiting when its own context ends; the
computation carries on and its result is still stored. A panic in compute is
returned as an error matching ErrComputePanic and nothing is stored.
*/
func (c *ExpiringCache[V]) GetOrCompute(
	ctx context.Context,
	key keys.Key,
	compute api.ComputeFunc[V],
) (V, error) {
	k := string(key)

	if v, ok := c.lookup(k, true); ok {
		return v, nil
	}

	ch := c.sf.DoChan(k, func() (res any, err error) {
		// singleflight re-panics on a fresh goroutine, out of every caller's reach.
		defer func() {
			if r := recover(); r != nil {
				res, err = nil, fmt.Errorf("%w: %v", ErrComputePanic, r)
				c.engine.OnLoadError(k, err)
			}
		}()

		// A flight that ended between our lookup and now may have stored a
		// fresh value already.
		if v, ok := c.lookup(k, false); ok {
			return flight[V]{v}, nil
		}

		c.engine.OnMiss(k)
		v, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			c.engine.OnLoadError(k, err)
			return nil, err
		}
		c.store(k, v)
		return flight[V]{v}, nil
	})

	var zero V
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(flight[V]).value, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Peek returns a fresh value without touching LRU order or metrics.
func (c *ExpiringCache[V]) Peek(key keys.Key) (V, bool) {
	k := string(key)
	sh := shard.Select(k, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	var zero V
	ent, ok := sh.Store.Get(k)
	if !ok || c.engine.IsExpired(ent) {
		return zero, false
	}
	return ent.Value, true
}

// Len returns the number of stored entries, stale ones included.
func (c *ExpiringCache[V]) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.Mu.Lock()
		n += sh.Store.Size()
		sh.Mu.Unlock()
	}
	return n
}

func (c *ExpiringCache[V]) Kind() policy.Kind { return c.cfg.Kind }

func (c *ExpiringCache[V]) TTL() time.Duration { return c.cfg.TTL }

/*
lookup returns the value under key if it is fresh and marks the key as used.
A stale entry is reported (when reportStale is set) and left in place.
*/
func (c *ExpiringCache[V]) lookup(key string, reportStale bool) (V, bool) {
	sh := shard.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	var zero V
	ent, ok := sh.Store.Get(key)
	if !ok {
		return zero, false
	}
	if c.engine.IsExpired(ent) {
		if reportStale {
			c.engine.OnStale(key, ent.CreatedAt)
		}
		return zero, false
	}

	sh.Eviction.Touch(key)
	c.engine.OnHit(key)
	return ent.Value, true
}

// store writes a new entry for key. Refreshing an existing key replaces its
// entry and counts as a use; a new key may first push out a victim.
func (c *ExpiringCache[V]) store(key string, value V) {
	sh := shard.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	ent := types.NewEntry(value, c.engine.Now())

	if _, ok := sh.Store.Get(key); ok {
		sh.Store.Put(key, ent)
		sh.Eviction.Touch(key)
		return
	}

	if victim, ok := sh.Eviction.Victim(sh.Store.Size()); ok {
		sh.Store.Delete(victim)
		c.engine.OnEvict(victim)
	}

	sh.Store.Put(key, ent)
	sh.Eviction.Add(key)
}
