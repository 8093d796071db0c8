//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is part of the amd64 baseline; AVX2 is where the 16-lane
	// compare actually pays for itself.
	hasWideRegisters = cpu.X86.HasAVX2
	initCapabilities()
}
