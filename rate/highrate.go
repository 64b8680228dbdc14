package rate

import "github.com/bpfs/gf16rs/engine"

// HighRate is the strategy used when parityShards > dataShards: the FFT
// domain is rounded up from the data count, the cheaper dimension to pad
// in that regime, and the parity side (which may exceed the rounded
// domain) is produced in successive blocks of that size; decoding runs one
// transform over CeilPow2(rounded size + parityShards) slots. See
// Codec.EncodeHighRate/ReconstructHighRate.
type HighRate[E engine.Engine] struct {
	codec *Codec[E]
}

func NewHighRate[E engine.Engine](dataShards, parityShards int) *HighRate[E] {
	return &HighRate[E]{codec: NewCodec[E](dataShards, parityShards)}
}

func (h *HighRate[E]) DataShards() int   { return h.codec.DataShards() }
func (h *HighRate[E]) ParityShards() int { return h.codec.ParityShards() }

func (h *HighRate[E]) Encode(data [][]byte) [][]byte {
	return h.codec.EncodeHighRate(data)
}

func (h *HighRate[E]) Reconstruct(shards [][]byte, chunkLen int) map[int][]byte {
	return h.codec.ReconstructHighRate(shards, chunkLen)
}
