package rate

import "github.com/bpfs/gf16rs/engine"

// LowRate is the strategy used when parityShards <= dataShards: the FFT
// domain is rounded up from the parity count, and the data side (which
// may exceed the rounded domain) is accumulated in successive blocks of
// that size. See Codec.Encode/Reconstruct.
type LowRate[E engine.Engine] struct {
	*Codec[E]
}

func NewLowRate[E engine.Engine](dataShards, parityShards int) *LowRate[E] {
	return &LowRate[E]{Codec: NewCodec[E](dataShards, parityShards)}
}
