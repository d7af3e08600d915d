package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	cache "github.com/krisalay/mind-reader"
	"github.com/krisalay/mind-reader/keys"
	"github.com/krisalay/mind-reader/policy"
)

func newBenchmarkCache(cfg policy.Config) *cache.ExpiringCache[int] {
	return cache.NewExpiringCache[int](cfg)
}

func constant(v int) func(context.Context) (int, error) {
	return func(context.Context) (int, error) { return v, nil }
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkGetOrComputeHit(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(policy.Bounded(100000, time.Minute))
	k := keys.Of("key")

	c.GetOrCompute(ctx, k, constant(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCompute(ctx, k, constant(1))
	}
}

func BenchmarkGetOrComputeMissBounded(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(policy.Bounded(1000, time.Minute))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCompute(ctx, keys.Of(fmt.Sprintf("miss-%d", i)), constant(i))
	}
}

func BenchmarkGetOrComputeMissUnbounded(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(policy.Unbounded(time.Minute, policy.DefaultShards))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCompute(ctx, keys.Of(fmt.Sprintf("miss-%d", i)), constant(i))
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkParallelHitBounded(b *testing.B) {
	benchmarkParallelHit(b, policy.Bounded(100000, time.Minute))
}

func BenchmarkParallelHitUnbounded(b *testing.B) {
	benchmarkParallelHit(b, policy.Unbounded(time.Minute, policy.DefaultShards))
}

func benchmarkParallelHit(b *testing.B, cfg policy.Config) {
	ctx := context.Background()
	c := newBenchmarkCache(cfg)

	ks := make([]keys.Key, 1000)
	for i := range ks {
		ks[i] = keys.Of(fmt.Sprintf("key-%d", i))
		c.GetOrCompute(ctx, ks[i], constant(i))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.GetOrCompute(ctx, ks[i%len(ks)], constant(i))
			i++
		}
	})
}

//
// ================= HIGH CONCURRENCY =================
//

func BenchmarkHighConcurrency(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(policy.Unbounded(time.Minute, policy.DefaultShards))

	ks := make([]keys.Key, 10000)
	for i := range ks {
		ks[i] = keys.Of(fmt.Sprintf("key-%d", i))
		c.GetOrCompute(ctx, ks[i], constant(i))
	}

	b.ResetTimer()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < b.N/100; j++ {
				c.GetOrCompute(ctx, ks[j%len(ks)], constant(j))
			}
		}()
	}
	wg.Wait()
}
