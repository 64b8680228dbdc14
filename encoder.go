package gf16rs

import (
	"github.com/bpfs/gf16rs/engine"
	"github.com/bpfs/gf16rs/rate"
)

// Encoder accumulates exactly OriginalCount original shards, in order, and
// computes RecoveryCount recovery shards from them.
type Encoder struct {
	originalCount int
	recoveryCount int
	shardBytes    int

	store  *engine.Shards
	filled int
	codec  codec
}

// NewEncoder constructs an Encoder for originalCount original shards and
// recoveryCount recovery shards, each shardBytes bytes long. shardBytes
// must be even and positive; originalCount and recoveryCount must be a
// pair rate.Supported accepts (see rate.Supported's doc for the exact
// bound).
func NewEncoder(originalCount, recoveryCount, shardBytes int) (*Encoder, error) {
	if !rate.Supported(originalCount, recoveryCount) {
		return nil, ErrUnsupportedShardCount
	}
	if shardBytes <= 0 || shardBytes%2 != 0 {
		return nil, ErrInvalidShardSize
	}
	chunkLen := engine.PaddedLen(shardBytes)
	return &Encoder{
		originalCount: originalCount,
		recoveryCount: recoveryCount,
		shardBytes:    shardBytes,
		store:         engine.NewShards(originalCount, chunkLen),
		codec:         newCodec(originalCount, recoveryCount),
	}, nil
}

// AddOriginalShard appends the next original shard, in order. It returns
// ErrDifferentShardSize if data doesn't match the shard size the encoder
// was constructed with, and ErrTooManyOriginalShards once OriginalCount
// shards have already been added.
func (e *Encoder) AddOriginalShard(data []byte) error {
	if len(data) != e.shardBytes {
		return ErrDifferentShardSize{Want: e.shardBytes, Got: len(data)}
	}
	if e.filled >= e.originalCount {
		return ErrTooManyOriginalShards{OriginalCount: e.originalCount}
	}
	e.store.Insert(e.filled, data)
	e.filled++
	return nil
}

// Encode computes the recovery shards from every original shard added so
// far. It returns ErrTooFewOriginalShards if fewer than OriginalCount
// shards have been added.
func (e *Encoder) Encode() (*EncoderResult, error) {
	if e.filled < e.originalCount {
		return nil, ErrTooFewOriginalShards{OriginalCount: e.originalCount, Received: e.filled}
	}
	recovery := e.codec.Encode(e.store.Raw())
	return &EncoderResult{recovery: recovery, shardBytes: e.shardBytes}, nil
}

// Close releases the encoder's internal buffers. Calling any other method
// on a closed Encoder is undefined behavior.
func (e *Encoder) Close() {
	e.store = nil
}

// EncoderResult holds the recovery shards Encode produced.
type EncoderResult struct {
	recovery   [][]byte // padded chunk bytes, one per recovery shard
	shardBytes int
}

// Recovery returns recovery shard i, unpacked to ShardBytes bytes.
func (r *EncoderResult) Recovery(i int) []byte {
	if i < 0 || i >= len(r.recovery) {
		panic("gf16rs: recovery shard index out of range")
	}
	return engine.ExtractChunk(r.recovery[i], r.shardBytes)
}

// Shards returns every recovery shard, unpacked, in order.
func (r *EncoderResult) Shards() [][]byte {
	out := make([][]byte, len(r.recovery))
	for i := range r.recovery {
		out[i] = r.Recovery(i)
	}
	return out
}

// Close releases the result's internal buffers. Calling Recovery or Shards
// on a closed EncoderResult is undefined behavior.
func (r *EncoderResult) Close() {
	r.recovery = nil
}
