package simd

import "math/bits"

// NodeWidth is the number of uint32 lanes that fit one 64-byte cache line.
// The vector kernel is specialized to exactly this width.
const NodeWidth = 16

// rankGE16Impl is the implementation function pointer for full-width nodes.
// Platform init may repoint it at the vector kernel.
var rankGE16Impl = rankGE16Generic

// RankGE returns the index of the first element of node that is >= x, or
// len(node) if no element qualifies. node must be sorted non-decreasing;
// len(node) must not exceed NodeWidth.
func RankGE(node []uint32, x uint32) int {
	if len(node) == NodeWidth {
		return rankGE16Impl(node, x)
	}
	return rankGEGeneric(node, x)
}

// rankGE16Unrolled compares all 16 lanes against x and reduces to a bitmask.
// Fully unrolled, no data-dependent branches; the pattern is the same one the
// compiler auto-vectorizes for filter kernels: independent lane compares
// feeding independent mask bits.
func rankGE16Unrolled(node []uint32, x uint32) int {
	_ = node[15]

	var mask uint32
	mask |= b2u(node[0] >= x)
	mask |= b2u(node[1] >= x) << 1
	mask |= b2u(node[2] >= x) << 2
	mask |= b2u(node[3] >= x) << 3
	mask |= b2u(node[4] >= x) << 4
	mask |= b2u(node[5] >= x) << 5
	mask |= b2u(node[6] >= x) << 6
	mask |= b2u(node[7] >= x) << 7
	mask |= b2u(node[8] >= x) << 8
	mask |= b2u(node[9] >= x) << 9
	mask |= b2u(node[10] >= x) << 10
	mask |= b2u(node[11] >= x) << 11
	mask |= b2u(node[12] >= x) << 12
	mask |= b2u(node[13] >= x) << 13
	mask |= b2u(node[14] >= x) << 14
	mask |= b2u(node[15] >= x) << 15

	// A synthetic bit above the last lane makes TrailingZeros return
	// NodeWidth for the all-zero mask.
	return bits.TrailingZeros32(mask | 1<<NodeWidth)
}

// rankGE16Generic is the scalar fallback for full-width nodes.
func rankGE16Generic(node []uint32, x uint32) int {
	return rankGEGeneric(node, x)
}

// rankGEGeneric is the scalar implementation for arbitrary node widths.
// Because the node is sorted, the first qualifying lane is the answer.
func rankGEGeneric(node []uint32, x uint32) int {
	for i, k := range node {
		if k >= x {
			return i
		}
	}
	return len(node)
}

// b2u converts a bool to 0 or 1 without branching.
// The compiler typically optimizes this to a conditional move.
func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
