// Package prefetch provides best-effort cache warming hints for the search
// layouts.
//
// Go has no portable prefetch intrinsic, so the hint is expressed as an
// explicit touch load of the target element. The load pulls the surrounding
// cache line toward the core ahead of use; it has no correctness effect and
// callers may skip it entirely.
package prefetch

import "sync/atomic"

// Distance is how many tree levels ahead of the current position the binary
// descent requests. Four levels of binary fanout cover the 16 slots of one
// 64-byte cache line, matching the bandwidth-latency product of current
// hardware.
const Distance = 4

// Touch reads the element at index i of keys if it is in range, warming the
// cache line that holds it. The atomic load keeps the compiler from dropping
// the otherwise unused read and stays race-free under concurrent queries.
func Touch(keys []uint32, i int) {
	if uint(i) < uint(len(keys)) {
		_ = atomic.LoadUint32(&keys[i])
	}
}
