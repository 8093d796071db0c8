package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Uint32 returns a pseudo-random uint32 below the sentinel range.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32() >> 1
}

// SortedKeys generates n non-decreasing keys with random gaps in [0, maxGap].
// A gap of zero produces duplicate keys, so the result exercises the
// duplicate-handling paths of the layouts.
// Locks only once per call.
func (r *RNG) SortedKeys(n int, maxGap uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint32, n)
	var cur uint32
	for i := range keys {
		cur += uint32(r.rand.Intn(int(maxGap) + 1))
		keys[i] = cur
	}
	return keys
}

// SortedUniqueKeys generates n strictly increasing keys.
func (r *RNG) SortedUniqueKeys(n int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint32, n)
	var cur uint32
	for i := range keys {
		cur += 1 + uint32(r.rand.Intn(16))
		keys[i] = cur
	}
	return keys
}

// QueryMix generates m query keys covering the interesting cases against
// keys: exact hits, near misses on both sides, values below the minimum and
// above the maximum. keys must be sorted and non-empty.
func (r *RNG) QueryMix(keys []uint32, m int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	lo, hi := keys[0], keys[len(keys)-1]
	queries := make([]uint32, m)
	for i := range queries {
		switch i % 4 {
		case 0: // exact hit
			queries[i] = keys[r.rand.Intn(len(keys))]
		case 1: // near an element, either side
			k := keys[r.rand.Intn(len(keys))]
			if r.rand.Intn(2) == 0 {
				queries[i] = k + 1
			} else {
				queries[i] = k - 1
			}
		case 2: // below minimum
			if lo == 0 {
				queries[i] = 0
			} else {
				queries[i] = uint32(r.rand.Int63n(int64(lo) + 1))
			}
		default: // at or above maximum
			queries[i] = hi + uint32(r.rand.Intn(8))
		}
	}
	return queries
}
