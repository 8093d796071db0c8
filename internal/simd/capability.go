package simd

import (
	"os"
	"strings"
)

// Kernel identifies a node scanner implementation.
type Kernel uint8

const (
	// Generic is the scalar per-lane fallback.
	Generic Kernel = iota
	// Vector is the unrolled 16-lane mask kernel.
	Vector
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "vector":
		return Vector, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeKernel is the selected scanner implementation.
	activeKernel Kernel

	// hasOverride is true if STATICSEARCH_SIMD was set.
	hasOverride bool

	// CPU feature flag (set by platform-specific init)
	hasWideRegisters bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	// Check for environment override
	if override := os.Getenv("STATICSEARCH_SIMD"); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			if isKernelAvailable(k) {
				install(k)
				return
			}
			// Invalid override - fall through to auto-detection
		}
	}

	if hasWideRegisters {
		install(Vector)
		return
	}
	install(Generic)
}

// isKernelAvailable checks if a kernel is usable on this CPU.
func isKernelAvailable(k Kernel) bool {
	switch k {
	case Generic:
		return true
	case Vector:
		return hasWideRegisters
	default:
		return false
	}
}

func install(k Kernel) {
	activeKernel = k
	switch k {
	case Vector:
		rankGE16Impl = rankGE16Unrolled
	default:
		rankGE16Impl = rankGE16Generic
	}
}

// ActiveKernel returns the currently active scanner kernel.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if STATICSEARCH_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}
