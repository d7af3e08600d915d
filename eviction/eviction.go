package eviction

import "github.com/krisalay/mind-reader/policy"

/*
This file defines how a shard decides what to remove when it runs out of space.
*/

/*
Policy tracks the keys held by one shard and picks eviction victims.

The shard calls these methods while holding its lock, so implementations do
not synchronise on their own.
*/
type Policy interface {

	// Touch marks a key as just used. Called on a cache hit and when a stale
	// entry is refreshed in place.
	Touch(key string)

	// Add starts tracking a key that was not in the shard before.
	Add(key string)

	// Victim is called before a new key is inserted into a shard that holds
	// size entries. It returns the key to drop, or false when there is room.
	// The returned key is no longer tracked.
	Victim(size int) (string, bool)
}

// New builds the eviction policy for a cache configuration.
func New(cfg policy.Config) Policy {
	switch cfg.Kind {
	case policy.BoundedLRU:
		return newLRU(cfg.Capacity)
	default:
		return unbounded{}
	}
}

// unbounded never evicts. Growth is limited only by the key space requested.
type unbounded struct{}

func (unbounded) Touch(string)              {}
func (unbounded) Add(string)                {}
func (unbounded) Victim(int) (string, bool) { return "", false }
