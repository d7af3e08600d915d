package cache

import (
	"context"

	api "github.com/krisalay/mind-reader/api"
	"github.com/krisalay/mind-reader/keys"
	"github.com/krisalay/mind-reader/policy"
	"github.com/krisalay/mind-reader/types"
)

var _ types.Producer[int] = (*Memoized[int])(nil)

/*
Memoized wraps a producer with a cache and exposes the same Produce call.

Values and errors pass through untouched. A failed call stores nothing, so
the next call for the same path runs the producer again.
*/
type Memoized[V any] struct {
	producer types.Producer[V]
	cache    api.Cache[V]
}

// Memoize wraps producer with an existing cache. The cache should not be
// shared with another producer, or results for the same path would collide.
func Memoize[V any](producer types.Producer[V], c api.Cache[V]) *Memoized[V] {
	return &Memoized[V]{producer: producer, cache: c}
}

// NewMemoized wraps producer with a fresh cache built from cfg.
func NewMemoized[V any](producer types.Producer[V], cfg policy.Config, opts ...Option) *Memoized[V] {
	return Memoize[V](producer, NewExpiringCache[V](cfg, opts...))
}

func (m *Memoized[V]) Produce(ctx context.Context, path string) (V, error) {
	return m.cache.GetOrCompute(ctx, keys.Of(path), func(ctx context.Context) (V, error) {
		return m.producer.Produce(ctx, path)
	})
}

// Cache exposes the cache behind the wrapper.
func (m *Memoized[V]) Cache() api.Cache[V] {
	return m.cache
}
