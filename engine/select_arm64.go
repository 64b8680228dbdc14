//go:build arm64

package engine

import "github.com/bpfs/gf16rs/internal/cpufeature"

// Select probes the running CPU once and returns the fastest tier it
// supports, falling back to NoSimd when NEON isn't reported (it always is
// on real arm64 hardware; the fallback exists for symmetry and testing).
func Select() Engine {
	if cpufeature.Detect() == cpufeature.NEON {
		return Neon{}
	}
	return NoSimd{}
}
