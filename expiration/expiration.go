// This file defines how cache entries expire over time.

package expiration

import "time"

/*
Strategy decides how long an entry stays usable after it was produced.

Expiry is lazy: the cache checks the entry on lookup and treats a stale entry
as absent, but it does not remove it. The entry is replaced by the next
successful computation for its key or dropped by eviction.
*/
type Strategy interface {
	Lifetime() time.Duration
}

/*
ExpireAfterWrite keeps an entry fresh for TTL after it was produced.
Reads do not extend the lifetime. A non-positive TTL expires everything
immediately.
*/
type ExpireAfterWrite struct {
	TTL time.Duration
}

func (e ExpireAfterWrite) Lifetime() time.Duration { return e.TTL }
