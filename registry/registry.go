package registry

import (
	"context"
	"errors"

	cache "github.com/krisalay/mind-reader"
	"github.com/krisalay/mind-reader/decode"
	"github.com/krisalay/mind-reader/policy"
	"github.com/krisalay/mind-reader/seq"
	"github.com/krisalay/mind-reader/types"
)

// Config holds the cache configuration for each policy.
type Config struct {
	BoundedLRU   policy.Config
	WriteThrough policy.Config
}

// DefaultConfig returns 1000 entries / 60s for bounded_lru and 60s for write_through.
func DefaultConfig() Config {
	return Config{
		BoundedLRU:   policy.Bounded(policy.DefaultCapacity, policy.DefaultTTL),
		WriteThrough: policy.Unbounded(policy.DefaultTTL, policy.DefaultShards),
	}
}

func (c Config) Validate() error {
	return errors.Join(c.BoundedLRU.Validate(), c.WriteThrough.Validate())
}

func (c Config) forKind(k policy.Kind) policy.Config {
	if k == policy.BoundedLRU {
		return c.BoundedLRU
	}
	return c.WriteThrough
}

// Producers are the uncached decoders behind each content kind.
type Producers struct {
	Records types.Producer[*seq.Sequence[decode.Record]]
	Image   types.Producer[decode.Image]
	Rows    types.Producer[*seq.Sequence[decode.Row]]
	Lines   types.Producer[*seq.Sequence[string]]
}

// DefaultProducers returns the file decoders from package decode.
func DefaultProducers() Producers {
	return Producers{
		Records: types.ProducerFunc[*seq.Sequence[decode.Record]](decode.Records),
		Image:   types.ProducerFunc[decode.Image](decode.ReadImage),
		Rows:    types.ProducerFunc[*seq.Sequence[decode.Row]](decode.Rows),
		Lines:   types.ProducerFunc[*seq.Sequence[string]](decode.Lines),
	}
}

/*
Registry owns one cached producer per (content kind, policy) pair.

Every pair gets its own cache, so reading the same path as records and as rows
never shares an entry. The registry only selects; caching lives in the
memoized producers.
*/
type Registry struct {
	records map[policy.Kind]*cache.Memoized[*seq.Sequence[decode.Record]]
	images  map[policy.Kind]*cache.Memoized[decode.Image]
	rows    map[policy.Kind]*cache.Memoized[*seq.Sequence[decode.Row]]
	lines   map[policy.Kind]*cache.Memoized[*seq.Sequence[string]]
}

// New builds every cache up front. opts apply to all of them.
func New(cfg Config, p Producers, opts ...cache.Option) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		records: make(map[policy.Kind]*cache.Memoized[*seq.Sequence[decode.Record]]),
		images:  make(map[policy.Kind]*cache.Memoized[decode.Image]),
		rows:    make(map[policy.Kind]*cache.Memoized[*seq.Sequence[decode.Row]]),
		lines:   make(map[policy.Kind]*cache.Memoized[*seq.Sequence[string]]),
	}
	for _, k := range policy.Kinds() {
		pc := cfg.forKind(k)
		r.records[k] = cache.NewMemoized(p.Records, pc, opts...)
		r.images[k] = cache.NewMemoized(p.Image, pc, opts...)
		r.rows[k] = cache.NewMemoized(p.Rows, pc, opts...)
		r.lines[k] = cache.NewMemoized(p.Lines, pc, opts...)
	}
	return r, nil
}

// Read runs the cached producer for kind and pol on path.
func (r *Registry) Read(ctx context.Context, path string, kind ContentKind, pol policy.Kind) (Result, error) {
	res := Result{Kind: kind}
	var err error

	switch kind {
	case StructuredRecords:
		res.Records, err = produce(ctx, r.records, pol, path)
	case Image:
		res.Image, err = produce(ctx, r.images, pol, path)
	case DelimitedRows:
		res.Rows, err = produce(ctx, r.rows, pol, path)
	case TextLines:
		res.Lines, err = produce(ctx, r.lines, pol, path)
	default:
		return Result{}, &types.InvalidArgumentError{Field: "content kind", Value: string(kind)}
	}

	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func produce[V any](
	ctx context.Context,
	m map[policy.Kind]*cache.Memoized[V],
	pol policy.Kind,
	path string,
) (V, error) {
	p, ok := m[pol]
	if !ok {
		var zero V
		return zero, &types.InvalidArgumentError{Field: "cache policy", Value: string(pol)}
	}
	return p.Produce(ctx, path)
}

// Sizes returns the number of stored entries per "kind/policy" pair.
func (r *Registry) Sizes() map[string]int {
	out := make(map[string]int, 8)
	for _, k := range policy.Kinds() {
		out[string(StructuredRecords)+"/"+string(k)] = r.records[k].Cache().Len()
		out[string(Image)+"/"+string(k)] = r.images[k].Cache().Len()
		out[string(DelimitedRows)+"/"+string(k)] = r.rows[k].Cache().Len()
		out[string(TextLines)+"/"+string(k)] = r.lines[k].Cache().Len()
	}
	return out
}
