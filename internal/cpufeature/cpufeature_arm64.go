//go:build arm64

package cpufeature

import "github.com/klauspost/cpuid/v2"

func detect() Feature {
	if cpuid.CPU.Has(cpuid.ASIMD) {
		return NEON
	}
	return None
}
