package gf16rs

import (
	"github.com/bpfs/gf16rs/engine"
	"github.com/bpfs/gf16rs/internal/bitset"
	"github.com/bpfs/gf16rs/rate"
)

// Decoder collects however many original and recovery shards are
// available and recovers whichever original shards are missing, provided
// at least OriginalCount of the two kinds arrived in total.
type Decoder struct {
	originalCount int
	recoveryCount int
	shardBytes    int
	chunkLen      int

	chunks   [][]byte // length originalCount+recoveryCount, nil marks missing
	haveOrig *bitset.Set
	haveRec  *bitset.Set
	received int

	codec codec
}

// NewDecoder constructs a Decoder for originalCount original shards and
// recoveryCount recovery shards, each shardBytes bytes long.
func NewDecoder(originalCount, recoveryCount, shardBytes int) (*Decoder, error) {
	if !rate.Supported(originalCount, recoveryCount) {
		return nil, ErrUnsupportedShardCount
	}
	if shardBytes <= 0 || shardBytes%2 != 0 {
		return nil, ErrInvalidShardSize
	}
	return &Decoder{
		originalCount: originalCount,
		recoveryCount: recoveryCount,
		shardBytes:    shardBytes,
		chunkLen:      engine.PaddedLen(shardBytes),
		chunks:        make([][]byte, originalCount+recoveryCount),
		haveOrig:      bitset.New(uint(originalCount)),
		haveRec:       bitset.New(uint(recoveryCount)),
		codec:         newCodec(originalCount, recoveryCount),
	}, nil
}

// AddOriginalShard records original shard index as present.
func (d *Decoder) AddOriginalShard(index int, data []byte) error {
	if index < 0 || index >= d.originalCount {
		return ErrInvalidOriginalShardIndex{OriginalCount: d.originalCount, Index: index}
	}
	if len(data) != d.shardBytes {
		return ErrDifferentShardSize{Want: d.shardBytes, Got: len(data)}
	}
	if d.haveOrig.Test(uint(index)) {
		return ErrDuplicateOriginalShardIndex{Index: index}
	}
	chunk := make([]byte, d.chunkLen)
	engine.PackChunk(chunk, data)
	d.chunks[index] = chunk
	d.haveOrig.Set(uint(index))
	d.received++
	return nil
}

// AddRecoveryShard records recovery shard index as present.
func (d *Decoder) AddRecoveryShard(index int, data []byte) error {
	if index < 0 || index >= d.recoveryCount {
		return ErrInvalidRecoveryShardIndex{RecoveryCount: d.recoveryCount, Index: index}
	}
	if len(data) != d.shardBytes {
		return ErrDifferentShardSize{Want: d.shardBytes, Got: len(data)}
	}
	if d.haveRec.Test(uint(index)) {
		return ErrDuplicateRecoveryShardIndex{Index: index}
	}
	chunk := make([]byte, d.chunkLen)
	engine.PackChunk(chunk, data)
	d.chunks[d.originalCount+index] = chunk
	d.haveRec.Set(uint(index))
	d.received++
	return nil
}

// Decode recovers every missing original shard it can. It returns
// ErrNotEnoughShards if fewer than OriginalCount shards (original plus
// recovery, combined) have been added.
func (d *Decoder) Decode() (*DecoderResult, error) {
	if d.received < d.originalCount {
		return nil, ErrNotEnoughShards{
			OriginalCount:    d.originalCount,
			OriginalReceived: int(d.haveOrig.Count()),
			RecoveryReceived: int(d.haveRec.Count()),
		}
	}
	restored := d.codec.Reconstruct(d.chunks, d.chunkLen)
	out := make(map[int][]byte, len(restored))
	for i, chunk := range restored {
		out[i] = engine.ExtractChunk(chunk, d.shardBytes)
	}
	return &DecoderResult{restored: out}, nil
}

// Close releases the decoder's internal buffers. Calling any other method
// on a closed Decoder is undefined behavior.
func (d *Decoder) Close() {
	d.chunks = nil
}

// DecoderResult holds the original shards Decode was able to restore.
type DecoderResult struct {
	restored map[int][]byte
}

// RestoredOriginal returns original shard i and true if Decode restored it.
// Shards that were already present are not reported; for them it returns
// nil and false.
func (r *DecoderResult) RestoredOriginal(i int) ([]byte, bool) {
	data, ok := r.restored[i]
	return data, ok
}

// RestoredOriginals returns every original shard index Decode restored,
// keyed by index.
func (r *DecoderResult) RestoredOriginals() map[int][]byte {
	return r.restored
}

// Close releases the result's internal buffers. Calling RestoredOriginal or
// RestoredOriginals on a closed DecoderResult is undefined behavior.
func (r *DecoderResult) Close() {
	r.restored = nil
}
