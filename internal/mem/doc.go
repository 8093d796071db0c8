// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation so that fixed-width index nodes can be
// placed exactly on cache-line boundaries.
package mem
