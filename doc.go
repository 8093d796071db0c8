// Package staticsearch provides a read-only, in-memory lower-bound index
// over a fixed sorted key set.
//
// The key set is static between builds; in exchange, point queries touch the
// minimum number of cache lines. Two implicit, pointer-free layouts are
// available:
//
//   - Eytzinger: a binary tree stored breadth-first in a flat array, queried
//     with a branch-free descent.
//   - Blocked: a wide-fanout tree whose nodes are exactly one 64-byte cache
//     line, queried with a data-parallel per-node scan.
//
// # Quick Start
//
//	ix, _ := staticsearch.Build(keys) // keys sorted non-decreasing
//	v, ok := ix.LowerBound(42)        // smallest key >= 42
//
// Pick the layout explicitly:
//
//	ix, _ := staticsearch.Build(keys, func(o *staticsearch.Options) {
//	    o.Variant = staticsearch.VariantEytzinger
//	})
//
// # Concurrency Model
//
// A built index is immutable: any number of goroutines may query it
// concurrently without synchronization. There is no in-place update; rebuild
// from the new key set and swap the reference atomically on the caller side.
//
// # Key Domain
//
// Keys are uint32. The maximum value math.MaxUint32 is reserved as layout
// padding and rejected at build time.
//
// # Key Features
//
//   - Pointer-free layouts, one allocation per index
//   - Branch-free binary descent with prefetch hints
//   - Cache-line-aligned nodes with vectorized scanning (scalar fallback)
//   - Batched queries fanned out across goroutines
package staticsearch
