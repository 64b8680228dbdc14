// Package cpufeature probes the running CPU once, at dispatcher
// construction, so the engine package can pick the fastest available
// Engine implementation. It is backed by github.com/klauspost/cpuid/v2.
package cpufeature

import "github.com/klauspost/cpuid/v2"

// Feature identifies a hardware acceleration tier.
type Feature int

const (
	// None means no SIMD acceleration was detected; the scalar engine runs.
	None Feature = iota
	// SSSE3 is available (amd64).
	SSSE3
	// AVX2 is available (amd64).
	AVX2
	// NEON is available (arm64; always true in practice, kept as its own
	// named tier for symmetry with the other architectures).
	NEON
)

func (f Feature) String() string {
	switch f {
	case SSSE3:
		return "ssse3"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return "none"
	}
}

// Detect probes the running CPU once and returns the best tier the engine
// package knows how to exploit. It never panics and never errors: an
// unrecognized or unsupported CPU simply yields None.
func Detect() Feature {
	return detect()
}
