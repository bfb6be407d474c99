package cache

import (
	"testing"

	"github.com/icnsim/icnsim/simrng"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	// GIVEN an LRU cache of capacity 2
	c, err := New(LRU, 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	// WHEN we put a, b, c in sequence (S3 scenario)
	if _, ok := c.Put("a"); ok {
		t.Fatal("unexpected eviction on first put")
	}
	if _, ok := c.Put("b"); ok {
		t.Fatal("unexpected eviction on second put")
	}
	evicted, ok := c.Put("c")

	// THEN residents are {b, c} and evicted == a
	if !ok || evicted != "a" {
		t.Fatalf("expected eviction of a, got %v, ok=%v", evicted, ok)
	}
	assertResidents(t, c, "b", "c")

	// WHEN we get(b), then put(d)
	if hit := c.Get("b"); !hit {
		t.Fatal("expected hit on b")
	}
	evicted, ok = c.Put("d")

	// THEN residents are {b, d} and evicted == c (b was refreshed by Get)
	if !ok || evicted != "c" {
		t.Fatalf("expected eviction of c, got %v, ok=%v", evicted, ok)
	}
	assertResidents(t, c, "d", "b")
}

func TestLRU_GetOnHitMovesToFront(t *testing.T) {
	c, _ := New(LRU, 3, nil)
	c.Put("a")
	c.Put("b")
	c.Put("c")

	if !c.Get("a") {
		t.Fatal("expected hit on a")
	}
	// a is now most-recently-used; evicting should take b next.
	evicted, ok := c.Put("d")
	if !ok || evicted != "b" {
		t.Fatalf("expected eviction of b after refreshing a, got %v", evicted)
	}
}

func TestLRU_GetOnMissDoesNotMutate(t *testing.T) {
	c, _ := New(LRU, 2, nil)
	c.Put("a")
	if c.Get("missing") {
		t.Fatal("expected miss")
	}
	if c.Len() != 1 {
		t.Fatalf("Get on miss must not insert, len=%d", c.Len())
	}
}

func TestFIFO_EvictsOldestInsertion(t *testing.T) {
	c, _ := New(FIFO, 2, nil)
	c.Put("a")
	c.Put("b")

	// Accessing a must not change eviction order for FIFO (property 3).
	c.Get("a")

	evicted, ok := c.Put("c")
	if !ok || evicted != "a" {
		t.Fatalf("expected eviction of a regardless of Get, got %v", evicted)
	}
	assertResidents(t, c, "b", "c")
}

func TestLFU_EvictsSmallestCountTieBreakOldest(t *testing.T) {
	c, _ := New(LFU, 2, nil)
	c.Put("a")
	c.Put("b")

	// a and b both have count 0; a is older (smaller seq) so a is evicted.
	evicted, ok := c.Put("c")
	if !ok || evicted != "a" {
		t.Fatalf("expected eviction of a on tie, got %v", evicted)
	}

	c2, _ := New(LFU, 2, nil)
	c2.Put("x")
	c2.Put("y")
	c2.Get("x") // x now has count 1, y has count 0
	evicted, ok = c2.Put("z")
	if !ok || evicted != "y" {
		t.Fatalf("expected eviction of least-frequently-used y, got %v", evicted)
	}
}

func TestRAND_EvictsAmongResidentsDeterministicallyUnderSeed(t *testing.T) {
	key := simrng.NewSimulationKey(7)
	rng1 := simrng.New(key).ForSubsystem(simrng.SubsystemCacheEviction)
	c1, _ := New(RAND, 2, rng1)
	c1.Put("a")
	c1.Put("b")
	ev1, _ := c1.Put("c")

	rng2 := simrng.New(key).ForSubsystem(simrng.SubsystemCacheEviction)
	c2, _ := New(RAND, 2, rng2)
	c2.Put("a")
	c2.Put("b")
	ev2, _ := c2.Put("c")

	if ev1 != ev2 {
		t.Fatalf("same seed must produce same eviction: %v != %v", ev1, ev2)
	}
}

func TestNew_RejectsNonPositiveCapacity(t *testing.T) {
	if _, err := New(LRU, 0, nil); err == nil {
		t.Fatal("expected configuration error for capacity 0")
	}
	if _, err := New(LRU, -1, nil); err == nil {
		t.Fatal("expected configuration error for negative capacity")
	}
}

func TestNew_RejectsUnknownPolicy(t *testing.T) {
	if _, err := New(Policy("BOGUS"), 1, nil); err == nil {
		t.Fatal("expected configuration error for unknown policy")
	}
}

func TestNew_RAND_RequiresRNG(t *testing.T) {
	if _, err := New(RAND, 1, nil); err == nil {
		t.Fatal("expected configuration error for nil rng with RAND policy")
	}
}

func TestPut_AtCapacity_EvictsExactlyOne(t *testing.T) {
	c, _ := New(FIFO, 3, nil)
	c.Put("a")
	c.Put("b")
	c.Put("c")
	before := c.Len()
	_, ok := c.Put("d")
	if !ok {
		t.Fatal("expected an eviction at capacity")
	}
	if c.Len() != before {
		t.Fatalf("residency must remain at capacity after eviction: before=%d after=%d", before, c.Len())
	}
}

func TestClear_EmptiesCache(t *testing.T) {
	c, _ := New(LRU, 2, nil)
	c.Put("a")
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Clear, len=%d", c.Len())
	}
	if c.Has("a") {
		t.Fatal("expected a to be gone after Clear")
	}
}

func assertResidents(t *testing.T, c Cache, want ...ContentID) {
	t.Helper()
	for _, k := range want {
		if !c.Has(k) {
			t.Errorf("expected %v to be resident, dump=%v", k, c.Dump())
		}
	}
	if c.Len() != len(want) {
		t.Errorf("expected %d residents, got %d (dump=%v)", len(want), c.Len(), c.Dump())
	}
}
