// Package index defines the shared contract implemented by the static search
// layouts.
package index

import (
	"fmt"
	"math"
	"sort"
)

// Sentinel is the maximum representable key. Layouts use it as inert padding,
// so it can never be a real data value.
const Sentinel uint32 = math.MaxUint32

// ErrUnsorted is a named error type for out-of-order input.
type ErrUnsorted struct {
	Position int // Index of the first element smaller than its predecessor
}

// Error returns the error message for out-of-order input.
func (e *ErrUnsorted) Error() string {
	return fmt.Sprintf("input not sorted: element at index %d is smaller than its predecessor", e.Position)
}

// ErrReservedKey is a named error type for input containing the sentinel.
type ErrReservedKey struct {
	Position int
}

// Error returns the error message for reserved key usage.
func (e *ErrReservedKey) Error() string {
	return fmt.Sprintf("input contains the reserved sentinel key at index %d", e.Position)
}

// Index is a read-only lower-bound index over a fixed sorted key set.
// Implementations are immutable after construction, so any number of
// goroutines may query one concurrently without synchronization.
type Index interface {
	// LowerBound returns the smallest stored key >= x.
	// The second return value is false if no such key exists.
	LowerBound(x uint32) (uint32, bool)

	// RawIndex returns the implementation-level slot of the result for x,
	// for diagnostics and testing. The not-found slot is layout-specific.
	RawIndex(x uint32) int

	// Len returns the number of stored keys.
	Len() int
}

// VerifySorted checks that keys is non-decreasing and free of the sentinel
// value. Builders require sorted input but do not validate it themselves;
// this is the fail-fast check the facade runs on their behalf.
func VerifySorted(keys []uint32) error {
	for i, k := range keys {
		if k == Sentinel {
			return &ErrReservedKey{Position: i}
		}
		if i > 0 && k < keys[i-1] {
			return &ErrUnsorted{Position: i}
		}
	}
	return nil
}

// ReferenceLowerBound is the straightforward scan the layouts are measured
// against. keys must be sorted non-decreasing.
func ReferenceLowerBound(keys []uint32, x uint32) (uint32, bool) {
	i := sort.Search(len(keys), func(i int) bool { return keys[i] >= x })
	if i == len(keys) {
		return 0, false
	}
	return keys[i], true
}
