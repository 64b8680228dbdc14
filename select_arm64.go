//go:build arm64

package gf16rs

import (
	"github.com/bpfs/gf16rs/engine"
	"github.com/bpfs/gf16rs/rate"
)

func newCodec(dataShards, parityShards int) codec {
	highRate := parityShards > dataShards
	switch engine.Select().(type) {
	case engine.Neon:
		if highRate {
			return rate.NewHighRate[engine.Neon](dataShards, parityShards)
		}
		return rate.NewLowRate[engine.Neon](dataShards, parityShards)
	default:
		if highRate {
			return rate.NewHighRate[engine.NoSimd](dataShards, parityShards)
		}
		return rate.NewLowRate[engine.NoSimd](dataShards, parityShards)
	}
}
