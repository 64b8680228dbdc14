//go:build amd64

package engine

import "github.com/bpfs/gf16rs/internal/cpufeature"

// Select probes the running CPU once and returns the fastest tier it
// supports, falling back to NoSimd when no acceleration is detected.
func Select() Engine {
	switch cpufeature.Detect() {
	case cpufeature.AVX2:
		return Avx2{}
	case cpufeature.SSSE3:
		return Ssse3{}
	default:
		return NoSimd{}
	}
}
