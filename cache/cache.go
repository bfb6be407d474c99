// Package cache implements a fixed-capacity content cache with a pluggable
// replacement policy. It is the leaf dependency of the simulation core: it
// has no knowledge of topology, sessions or events.
package cache

import (
	"math/rand"

	"github.com/icnsim/icnsim/simerr"
)

// ContentID identifies a unit of content. Equality is total, matching
// spec §3's "opaque hashable value" contract.
type ContentID string

// Policy names a cache replacement policy.
type Policy string

// The four replacement policies required by spec §4.1.
const (
	LRU  Policy = "LRU"
	FIFO Policy = "FIFO"
	LFU  Policy = "LFU"
	RAND Policy = "RAND"
)

// Cache is a fixed-capacity mapping ContentID -> presence, with an eviction
// policy consulted on overflow. This is the entire surface a policy may
// expose; no policy-specific structure leaks through it (spec §9).
type Cache interface {
	// Has reports whether k is currently resident, without affecting
	// replacement order.
	Has(k ContentID) bool

	// Get is the hit path: reports whether k is resident and, if so,
	// updates the policy's recency/frequency state as if k had just been
	// accessed. A miss never mutates the cache.
	Get(k ContentID) bool

	// Put inserts k. If k is already resident, only policy state updates
	// (no eviction). Otherwise, if at capacity, one victim is evicted per
	// policy before k is inserted. Returns the evicted content and true,
	// or ("", false) if nothing was evicted.
	Put(k ContentID) (evicted ContentID, ok bool)

	// Dump returns an ordered snapshot of resident content.
	Dump() []ContentID

	// Clear empties the cache.
	Clear()

	// Capacity returns the configured capacity.
	Capacity() int

	// Len returns the current number of resident items.
	Len() int
}

// New constructs a Cache for the given policy and capacity. capacity must be
// > 0. rng is only consulted by the RAND policy; it must be non-nil when
// policy is RAND.
func New(policy Policy, capacity int, rng *rand.Rand) (Cache, error) {
	if capacity <= 0 {
		return nil, simerr.NewConfigError("cache.New", "capacity must be > 0, got %d", capacity)
	}
	switch policy {
	case LRU:
		return newLRUCache(capacity), nil
	case FIFO:
		return newFIFOCache(capacity), nil
	case LFU:
		return newLFUCache(capacity), nil
	case RAND:
		if rng == nil {
			return nil, simerr.NewConfigError("cache.New", "RAND policy requires a non-nil rng")
		}
		return newRandCache(capacity, rng), nil
	default:
		return nil, simerr.NewConfigError("cache.New", "unknown cache policy %q", policy)
	}
}
