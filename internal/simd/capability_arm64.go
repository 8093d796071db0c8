//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasWideRegisters = cpu.ARM64.HasASIMD
	initCapabilities()
}
