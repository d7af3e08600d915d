package engine

import (
	"time"

	"github.com/krisalay/mind-reader/expiration"
	"github.com/krisalay/mind-reader/types"
	"github.com/rs/zerolog"
)

/*
CacheEngine is the policy layer of a cache.
It is responsible for the "behavior" of the cache, NOT storage.

It decides:
- When an entry is stale
- What time it is
- How cache events are counted and logged

It does NOT:
- Store data
- Handle sharding or locking
- Decide eviction order
*/
type CacheEngine struct {

	// Expiration controls when a cache entry is considered too old.
	Expiration expiration.Strategy

	// Metrics counts hits, misses, evictions, stale lookups and failed loads.
	Metrics types.Metrics

	// Logger receives debug events for misses, stale lookups and evictions.
	Logger zerolog.Logger

	// Now is the clock. Tests replace it to move time without sleeping.
	Now func() time.Time
}

/*
NewCacheEngine creates a CacheEngine.
A nil metrics becomes NoopMetrics. A nil strategy treats every entry as stale.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	metrics types.Metrics,
	logger zerolog.Logger,
) *CacheEngine {
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if exp == nil {
		exp = expiration.ExpireAfterWrite{}
	}

	return &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Logger:     logger,
		Now:        time.Now,
	}
}

// Entry is the part of a stored entry the engine looks at.
// *types.CacheEntry[V] satisfies it for every V.
type Entry interface {
	IsFresh(ttl time.Duration, now time.Time) bool
}

// IsExpired reports whether ent has outlived the strategy's lifetime at the
// engine clock.
func (e *CacheEngine) IsExpired(ent Entry) bool {
	return !ent.IsFresh(e.Expiration.Lifetime(), e.Now())
}

func (e *CacheEngine) OnHit(key string) {
	e.Metrics.Hit()
}

func (e *CacheEngine) OnStale(key string, createdAt time.Time) {
	e.Metrics.Expire()
	e.Logger.Debug().Str("key", key).Time("created_at", createdAt).Msg("stale entry")
}

func (e *CacheEngine) OnMiss(key string) {
	e.Metrics.Miss()
	e.Logger.Debug().Str("key", key).Msg("miss")
}

func (e *CacheEngine) OnEvict(key string) {
	e.Metrics.Eviction()
	e.Logger.Debug().Str("key", key).Msg("evicted")
}

// OnLoadError records a failed computation. The error is returned to the
// caller unchanged; this only observes it.
func (e *CacheEngine) OnLoadError(key string, err error) {
	e.Metrics.LoadError()
	e.Logger.Debug().Str("key", key).Err(err).Msg("load failed")
}
