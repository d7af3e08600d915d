package engine

import (
	"testing"
	"time"

	"github.com/krisalay/mind-reader/expiration"
	"github.com/krisalay/mind-reader/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestIsExpiredUsesEntryFreshness(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created

	e := NewCacheEngine(expiration.ExpireAfterWrite{TTL: time.Minute}, nil, zerolog.Nop())
	e.Now = func() time.Time { return now }

	ent := types.NewEntry(42, created)
	assert.False(t, e.IsExpired(ent))

	now = created.Add(59 * time.Second)
	assert.False(t, e.IsExpired(ent))

	now = created.Add(time.Minute)
	assert.True(t, e.IsExpired(ent))
	assert.Equal(t, !ent.IsFresh(time.Minute, now), e.IsExpired(ent))
}

func TestNilStrategyExpiresEverything(t *testing.T) {
	e := NewCacheEngine(nil, nil, zerolog.Nop())
	assert.True(t, e.IsExpired(types.NewEntry("v", e.Now())))
}

func TestEventsReachMetrics(t *testing.T) {
	m := &types.Counters{}
	e := NewCacheEngine(expiration.ExpireAfterWrite{TTL: time.Minute}, m, zerolog.Nop())

	e.OnHit("k")
	e.OnMiss("k")
	e.OnStale("k", time.Now())
	e.OnEvict("k")
	e.OnLoadError("k", assert.AnError)

	assert.Equal(t, types.Snapshot{Hits: 1, Misses: 1, Evictions: 1, Expired: 1, LoadErrors: 1}, m.Snapshot())
}
