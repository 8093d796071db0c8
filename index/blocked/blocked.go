// Package blocked implements the wide-fanout implicit search layout.
//
// Keys are grouped into fixed-width nodes sized to one 64-byte cache line
// (16 uint32 keys by default). Node k has width+1 children at positions
// k*(width+1)+1 .. k*(width+1)+width+1, computed rather than stored. Each
// descent step scans a whole node with the data-parallel scanner from
// internal/simd, so a query touches one cache line per tree level.
package blocked

import (
	"fmt"

	"github.com/hupe1980/staticsearch/index"
	"github.com/hupe1980/staticsearch/internal/mem"
	"github.com/hupe1980/staticsearch/internal/simd"
)

// Compile-time check to ensure Tree satisfies the index contract.
var _ index.Index = (*Tree)(nil)

// DefaultNodeWidth is the number of uint32 keys that fill one 64-byte cache
// line.
const DefaultNodeWidth = simd.NodeWidth

// ErrInvalidNodeWidth is a named error type for an unusable node width.
type ErrInvalidNodeWidth struct {
	Width int
}

// Error returns the error message for an unusable node width.
func (e *ErrInvalidNodeWidth) Error() string {
	return fmt.Sprintf("invalid node width %d: must be between 1 and %d", e.Width, simd.NodeWidth)
}

// Options contains configuration options for the blocked layout.
type Options struct {
	// NodeWidth is the number of keys per node. The default fills one
	// cache line; smaller widths still answer correctly but give up the
	// one-line-per-level property.
	NodeWidth int
}

// DefaultOptions contains the default configuration options for the blocked
// layout.
var DefaultOptions = Options{
	NodeWidth: DefaultNodeWidth,
}

// Tree is the built layout. It is immutable after New returns.
type Tree struct {
	// nodes holds nblocks*width keys, 64-byte aligned so each full-width
	// node occupies exactly one cache line. Unused tail slots hold the
	// sentinel.
	nodes   []uint32
	width   int
	nblocks int
	n       int
}

// New builds the layout from sorted keys. Input must be non-decreasing;
// this precondition is not validated here (the facade does that).
func New(keys []uint32, optFns ...func(o *Options)) (*Tree, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.NodeWidth < 1 || opts.NodeWidth > simd.NodeWidth {
		return nil, &ErrInvalidNodeWidth{Width: opts.NodeWidth}
	}

	n := len(keys)
	width := opts.NodeWidth
	nblocks := (n + width - 1) / width

	t := &Tree{
		nodes:   mem.AllocAlignedUint32(nblocks * width),
		width:   width,
		nblocks: nblocks,
		n:       n,
	}

	// Leaves-first in-order traversal: for each key slot of a node, build
	// the child subtree to its left before writing the slot, then build the
	// rightmost child. The input is consumed strictly left to right, so
	// every element lands in exactly one slot; once it runs out the
	// remaining slots get the sentinel.
	pos := 0
	var fill func(k int)
	fill = func(k int) {
		if k >= t.nblocks {
			return
		}
		base := k * width
		for i := 0; i < width; i++ {
			fill(k*(width+1) + i + 1)
			if pos < n {
				t.nodes[base+i] = keys[pos]
				pos++
			} else {
				t.nodes[base+i] = index.Sentinel
			}
		}
		fill(k*(width+1) + width + 1)
	}
	fill(0)

	return t, nil
}

// LowerBound returns the smallest stored key >= x, or false if none exists.
func (t *Tree) LowerBound(x uint32) (uint32, bool) {
	slot := t.search(x)
	if slot < 0 {
		return 0, false
	}
	v := t.nodes[slot]
	if v == index.Sentinel {
		// The descent never replaced the padding candidate, so no real
		// key qualifies.
		return 0, false
	}
	return v, true
}

// RawIndex returns the flat slot of the result for x, or -1 if no key
// qualifies.
func (t *Tree) RawIndex(x uint32) int {
	slot := t.search(x)
	if slot < 0 || t.nodes[slot] == index.Sentinel {
		return -1
	}
	return slot
}

// Len returns the number of stored keys.
func (t *Tree) Len() int {
	return t.n
}

// Width returns the node width the layout was built with.
func (t *Tree) Width() int {
	return t.width
}

// NodeCount returns the number of nodes in the layout.
func (t *Tree) NodeCount() int {
	return t.nblocks
}

// search descends the implicit tree and returns the flat slot of the last
// recorded candidate, or -1 if no lane ever qualified.
//
// Sentinel padding always compares >= x, so a padded slot can be recorded as
// a candidate. That is deliberate: the descent still enters the correct
// child, and any real qualifying key found deeper overwrites the padding.
// Once a real key has been recorded, the chosen subtree lies entirely left
// of it in traversal order and therefore contains no padding, so a sentinel
// can never overwrite a real result.
func (t *Tree) search(x uint32) int {
	k := 0
	slot := -1
	for k < t.nblocks {
		base := k * t.width
		i := simd.RankGE(t.nodes[base:base+t.width], x)
		if i < t.width {
			slot = base + i
		}
		k = k*(t.width+1) + i + 1
	}
	return slot
}
