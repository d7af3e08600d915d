package policy

import (
	"fmt"
	"time"

	"github.com/krisalay/mind-reader/types"
)

/*
Kind names how a cache keeps its entries.

Both kinds expire entries the same way (a fixed TTL counted from creation).
They differ only in what happens when a new key arrives:
  - BoundedLRU drops the least recently used key once Capacity is reached.
  - WriteThrough keeps every key; each result is written straight into the
    cache and stays until a refresh overwrites it.
*/
type Kind string

const (
	BoundedLRU   Kind = "bounded_lru"
	WriteThrough Kind = "write_through"
)

// ParseKind resolves a declared policy string. Matching is exact; "lru" is
// accepted as a second spelling of bounded_lru.
func ParseKind(s string) (Kind, error) {
	switch s {
	case string(BoundedLRU), "lru":
		return BoundedLRU, nil
	case string(WriteThrough):
		return WriteThrough, nil
	default:
		return "", &types.InvalidArgumentError{Field: "cache policy", Value: s}
	}
}

func (k Kind) String() string { return string(k) }

// Kinds lists every supported policy.
func Kinds() []Kind { return []Kind{BoundedLRU, WriteThrough} }

const (
	DefaultCapacity = 1000
	DefaultTTL      = 60 * time.Second
	DefaultShards   = 16
	MaxShards       = 256
)

// Config is the fixed, per-cache configuration.
type Config struct {
	Kind Kind

	// Capacity bounds a BoundedLRU cache. Ignored for WriteThrough.
	Capacity int

	// TTL is how long an entry stays fresh after it was produced.
	TTL time.Duration

	// Shards spreads a WriteThrough cache over independent locks. A bounded
	// cache always uses a single shard so that recency is tracked globally.
	Shards int
}

// Bounded returns an LRU configuration holding at most capacity entries.
func Bounded(capacity int, ttl time.Duration) Config {
	return Config{Kind: BoundedLRU, Capacity: capacity, TTL: ttl, Shards: 1}
}

// Unbounded returns a write-through configuration with the given TTL.
func Unbounded(ttl time.Duration, shards int) Config {
	return Config{Kind: WriteThrough, TTL: ttl, Shards: shards}
}

// ShardCount returns how many shards a cache built from c should use.
func (c Config) ShardCount() int {
	if c.Kind == BoundedLRU || c.Shards < 1 {
		return 1
	}
	return c.Shards
}

func (c Config) Validate() error {
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Kind == BoundedLRU && c.Capacity < 1 {
		return fmt.Errorf("%s capacity must be at least 1, got %d", c.Kind, c.Capacity)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("%s ttl must be positive, got %s", c.Kind, c.TTL)
	}
	if c.Kind == WriteThrough && (c.Shards < 1 || c.Shards > MaxShards) {
		return fmt.Errorf("%s shards must be between 1 and %d, got %d", c.Kind, MaxShards, c.Shards)
	}
	return nil
}
