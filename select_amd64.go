//go:build amd64

package gf16rs

import (
	"github.com/bpfs/gf16rs/engine"
	"github.com/bpfs/gf16rs/rate"
)

func newCodec(dataShards, parityShards int) codec {
	highRate := parityShards > dataShards
	switch engine.Select().(type) {
	case engine.Avx2:
		if highRate {
			return rate.NewHighRate[engine.Avx2](dataShards, parityShards)
		}
		return rate.NewLowRate[engine.Avx2](dataShards, parityShards)
	case engine.Ssse3:
		if highRate {
			return rate.NewHighRate[engine.Ssse3](dataShards, parityShards)
		}
		return rate.NewLowRate[engine.Ssse3](dataShards, parityShards)
	default:
		if highRate {
			return rate.NewHighRate[engine.NoSimd](dataShards, parityShards)
		}
		return rate.NewLowRate[engine.NoSimd](dataShards, parityShards)
	}
}
