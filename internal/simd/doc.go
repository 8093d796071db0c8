// Package simd provides the data-parallel node scanner used by the blocked
// search layout.
//
// A node is a run of up to 16 uint32 keys sharing one 64-byte cache line. The
// scanner answers "index of the first key >= x" for a whole node in one step:
// all lanes are compared against the broadcast query value, the per-lane
// results are packed into a bitmask, and the lowest set bit is the answer.
//
// Two kernels exist: a branch-free 16-lane kernel written so the compiler can
// auto-vectorize it, and a scalar fallback. Runtime CPU feature detection
// selects the kernel once at init; both kernels are required to produce
// identical indices for identical inputs. Set STATICSEARCH_SIMD=generic to
// force the scalar path.
package simd
