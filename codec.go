package gf16rs

// codec is the subset of rate.Codec[E] (and its HighRate/LowRate wrappers)
// the Encoder/Decoder need, erasing the engine type parameter so one
// concrete Encoder/Decoder struct can hold whichever tier newCodec picked
// for the running CPU.
type codec interface {
	DataShards() int
	ParityShards() int
	Encode(data [][]byte) [][]byte
	Reconstruct(shards [][]byte, chunkLen int) map[int][]byte
}
