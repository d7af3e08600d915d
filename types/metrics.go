package types

import "sync/atomic"

// This file defines how the cache reports what it is doing.

/*
Metrics receives one call per cache event. Implementations must be safe for
concurrent use because every shard reports through the same instance.
*/
type Metrics interface {

	// Hit is called when a fresh entry is returned without calling the producer.
	Hit()

	// Miss is called when the producer has to run, either because the key was
	// absent or because its entry went stale.
	Miss()

	// Eviction is called when a key is dropped to make room under a bounded policy.
	Eviction()

	// Expire is called when a lookup finds a stale entry. The entry stays in
	// place until it is overwritten or evicted.
	Expire()

	// LoadError is called when the producer fails. Nothing is stored in that case.
	LoadError()
}

// NoopMetrics ignores every event. It is the default so the cache never has to
// check for a nil Metrics.
type NoopMetrics struct{}

func (NoopMetrics) Hit()       {}
func (NoopMetrics) Miss()      {}
func (NoopMetrics) Eviction()  {}
func (NoopMetrics) Expire()    {}
func (NoopMetrics) LoadError() {}

// Counters is a Metrics implementation backed by atomic counters.
type Counters struct {
	hits       atomic.Uint64
	misses     atomic.Uint64
	evictions  atomic.Uint64
	expired    atomic.Uint64
	loadErrors atomic.Uint64
}

func (c *Counters) Hit()       { c.hits.Add(1) }
func (c *Counters) Miss()      { c.misses.Add(1) }
func (c *Counters) Eviction()  { c.evictions.Add(1) }
func (c *Counters) Expire()    { c.expired.Add(1) }
func (c *Counters) LoadError() { c.loadErrors.Add(1) }

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Expired    uint64
	LoadErrors uint64
}

// Snapshot reads all counters. The values are read one by one, so under
// concurrent traffic they may not describe a single instant.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Evictions:  c.evictions.Load(),
		Expired:    c.expired.Load(),
		LoadErrors: c.loadErrors.Load(),
	}
}

// HitRatio returns hits / (hits + misses), or 0 before any lookup.
func (s Snapshot) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
