//go:build !amd64 && !arm64

package gf16rs

import (
	"github.com/bpfs/gf16rs/engine"
	"github.com/bpfs/gf16rs/rate"
)

func newCodec(dataShards, parityShards int) codec {
	if parityShards > dataShards {
		return rate.NewHighRate[engine.NoSimd](dataShards, parityShards)
	}
	return rate.NewLowRate[engine.NoSimd](dataShards, parityShards)
}
