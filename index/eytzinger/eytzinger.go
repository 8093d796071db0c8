// Package eytzinger implements the binary implicit search layout.
//
// Keys live in a flat, 1-indexed array in breadth-first order: the node at
// slot k has its children at 2k and 2k+1, so the descent needs no stored
// pointers. The hot loop is branch-free; after it overshoots past the array
// bound, the answer slot is recovered from the bit pattern of the final
// position.
package eytzinger

import (
	"math/bits"

	"github.com/hupe1980/staticsearch/index"
	"github.com/hupe1980/staticsearch/internal/mem"
	"github.com/hupe1980/staticsearch/internal/prefetch"
)

// Compile-time check to ensure Tree satisfies the index contract.
var _ index.Index = (*Tree)(nil)

// Options contains configuration options for the eytzinger layout.
type Options struct {
	// Prefetch enables the cache warming hint during descent.
	Prefetch bool
}

// DefaultOptions contains the default configuration options for the
// eytzinger layout.
var DefaultOptions = Options{
	Prefetch: true,
}

// Tree is the built layout. It is immutable after New returns.
type Tree struct {
	// keys is 1-indexed; slot 0 is always reserved and never holds data,
	// so a corrected descent position of 0 uniformly means "no result".
	keys     []uint32
	n        int
	prefetch bool
}

// New builds the layout from sorted keys. Input must be non-decreasing;
// this precondition is not validated here (the facade does that).
func New(keys []uint32, optFns ...func(o *Options)) *Tree {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	n := len(keys)
	t := &Tree{
		keys:     mem.AllocAlignedUint32(n + 1),
		n:        n,
		prefetch: opts.Prefetch,
	}

	// In-order traversal of the implicit tree consumes the input strictly
	// left to right, so each input element lands in exactly one slot and
	// in-order reads of the layout reproduce the sorted input.
	pos := 0
	var fill func(k int)
	fill = func(k int) {
		if k > n {
			return
		}
		fill(2 * k)
		t.keys[k] = keys[pos]
		pos++
		fill(2*k + 1)
	}
	fill(1)

	return t
}

// LowerBound returns the smallest stored key >= x, or false if none exists.
func (t *Tree) LowerBound(x uint32) (uint32, bool) {
	k := t.descend(x)
	if k == 0 {
		return 0, false
	}
	return t.keys[k], true
}

// RawIndex returns the slot of the result for x, or 0 if no key qualifies.
func (t *Tree) RawIndex(x uint32) int {
	return t.descend(x)
}

// Len returns the number of stored keys.
func (t *Tree) Len() int {
	return t.n
}

// descend walks the implicit tree without branching on the comparison:
// a left turn (candidate found) doubles k, a right turn lands on 2k+1.
// The final position therefore encodes the turn history in its bits.
func (t *Tree) descend(x uint32) int {
	k := 1
	if t.prefetch {
		for k <= t.n {
			prefetch.Touch(t.keys, k<<prefetch.Distance)
			k = 2*k + b2i(t.keys[k] < x)
		}
	} else {
		for k <= t.n {
			k = 2*k + b2i(t.keys[k] < x)
		}
	}

	// The answer is the node of the last left turn: strip the trailing
	// right-turn 1-bits plus the 0-bit of that left turn. If every turn
	// went right, k collapses to 0 and nothing qualifies.
	k >>= bits.TrailingZeros(^uint(k)) + 1

	return k
}

// b2i converts a bool to 0 or 1 without branching.
// The compiler typically optimizes this to a conditional move.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
