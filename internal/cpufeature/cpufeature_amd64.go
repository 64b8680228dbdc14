//go:build amd64

package cpufeature

import "github.com/klauspost/cpuid/v2"

func detect() Feature {
	switch {
	case cpuid.CPU.Has(cpuid.AVX2):
		return AVX2
	case cpuid.CPU.Has(cpuid.SSSE3):
		return SSSE3
	default:
		return None
	}
}
