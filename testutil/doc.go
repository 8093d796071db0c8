// Package testutil provides testing utilities for staticsearch.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating sorted key sets and representative
// query workloads.
//
// # Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.SortedKeys(1000, 10)     // non-decreasing, gaps up to 10
//	keys := rng.SortedUniqueKeys(1000)   // strictly increasing
//
// # Query Workloads
//
//	queries := rng.QueryMix(keys, 4096)  // hits, misses, boundary cases
package testutil
