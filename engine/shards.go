package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// Shards is the engine's working store: a fixed number of equally sized
// slots, each a multiple of 64 bytes, addressable by position for the FFT
// drivers above, wrapped so the rate layer never deals with raw
// chunk-packing arithmetic directly.
//
// A shard logically holds shardLen bytes, but the last 64-byte chunk may be
// partially used when shardLen isn't a multiple of 64. Insert and Extract
// handle packing/unpacking that final chunk; every full chunk before it is
// copied verbatim, since the nibble-table convention (low-byte plane at
// chunk offset [0,32), high-byte plane at [32,64)) already matches a
// straight copy of sequential input bytes.
type Shards struct {
	slots [][]byte
	chunk int // padded bytes per slot, always a multiple of 64
}

// NewShards allocates count slots, each chunk bytes (chunk must be a
// multiple of 64), all zeroed.
func NewShards(count, chunk int) *Shards {
	if chunk%64 != 0 {
		panic("engine: chunk length must be a multiple of 64")
	}
	slots := make([][]byte, count)
	for i := range slots {
		slots[i] = make([]byte, chunk)
	}
	return &Shards{slots: slots, chunk: chunk}
}

// Len returns the slot count.
func (s *Shards) Len() int { return len(s.slots) }

// ChunkLen returns the padded byte length of every slot.
func (s *Shards) ChunkLen() int { return s.chunk }

// Raw exposes the underlying [][]byte for direct use by the FFT drivers in
// engine and rate; every slot is always chunk bytes long.
func (s *Shards) Raw() [][]byte { return s.slots }

// Slot returns slot i.
func (s *Shards) Slot(i int) []byte { return s.slots[i] }

// Dist2 returns the pair of slots a forward/inverse 2-way butterfly touches.
func (s *Shards) Dist2(pos, dist int) (a, b []byte) {
	return s.slots[pos], s.slots[pos+dist]
}

// Dist4 returns the four slots a 4-way butterfly touches.
func (s *Shards) Dist4(pos, dist int) (a, b, c, d []byte) {
	return s.slots[pos], s.slots[pos+dist], s.slots[pos+dist*2], s.slots[pos+dist*3]
}

// Zero clears slots [lo,hi).
func (s *Shards) Zero(lo, hi int) {
	for i := lo; i < hi; i++ {
		slot := s.slots[i]
		for j := range slot {
			slot[j] = 0
		}
	}
}

// CopyWithin copies count slots' worth of bytes from [src,src+count) to
// [dst,dst+count), used when a rate layer reuses one buffer as both a
// scratch area and an accumulator across block boundaries.
func (s *Shards) CopyWithin(src, dst, count int) {
	for i := 0; i < count; i++ {
		copy(s.slots[dst+i], s.slots[src+i])
	}
}

// SplitAt splits the store into two independent views sharing the same
// backing slots: [0,mid) and [mid,Len()). Used to hand a rate driver two
// disjoint sub-stores (e.g. a data half and a parity half) without
// copying.
func (s *Shards) SplitAt(mid int) (lo, hi *Shards) {
	return &Shards{slots: s.slots[:mid], chunk: s.chunk}, &Shards{slots: s.slots[mid:], chunk: s.chunk}
}

// Flat2 returns two non-overlapping flat ranges of count slots each,
// starting at x and y respectively, for a caller that needs raw [][]byte
// views into the same store (such as Engine.XorWithin's store argument).
func (s *Shards) Flat2(x, y, count int) (a, b [][]byte) {
	return s.slots[x : x+count], s.slots[y : y+count]
}

// XorWithin XORs count slots starting at src into count slots starting at
// dst, using eng's tier-specific implementation.
func (s *Shards) XorWithin(eng Engine, dst, src, count int) {
	eng.XorWithin(s.slots, dst, src, count)
}

// FFTButterfly applies eng's forward butterfly to the pair Dist2(pos,dist)
// selects.
func (s *Shards) FFTButterfly(eng Engine, pos, dist int, logM gf16.FFE) {
	x, y := s.Dist2(pos, dist)
	eng.FFTButterfly(x, y, logM)
}

// IFFTButterfly applies eng's inverse butterfly to the pair Dist2(pos,dist)
// selects.
func (s *Shards) IFFTButterfly(eng Engine, pos, dist int, logM gf16.FFE) {
	x, y := s.Dist2(pos, dist)
	eng.IFFTButterfly(x, y, logM)
}

// Dist4XorInto XORs the two pairs Dist4(pos,dist) selects (b^=a, d^=c),
// the degenerate identity-multiplier case of a forward or inverse 4-way
// butterfly stage.
func (s *Shards) Dist4XorInto(eng Engine, pos, dist int) {
	a, b, c, d := s.Dist4(pos, dist)
	eng.Xor(b, a)
	eng.Xor(d, c)
}

// FFT runs eng's forward FFT over the size slots starting at pos.
func (s *Shards) FFT(eng Engine, pos, mtrunc, size int, skew []gf16.FFE) {
	eng.FFT(s.slots[pos:pos+size], mtrunc, size, skew)
}

// IFFT runs eng's inverse FFT over the size slots starting at pos.
func (s *Shards) IFFT(eng Engine, pos, mtrunc int, xorRes [][]byte, size int, skew []gf16.FFE) {
	eng.IFFT(s.slots[pos:pos+size], mtrunc, xorRes, size, skew)
}

// Insert packs shard (shardLen logical bytes, shardLen <= s.chunk) into
// slot pos. Bytes belonging to full 64-byte chunks are copied directly;
// any trailing partial chunk is split low/high-half the way every full
// chunk already is read.
func (s *Shards) Insert(pos int, shard []byte) {
	PackChunk(s.slots[pos], shard)
}

// Extract reads shardLen logical bytes back out of slot pos, reversing
// Insert's tail packing.
func (s *Shards) Extract(pos int, shardLen int) []byte {
	return ExtractChunk(s.slots[pos], shardLen)
}

// PackChunk writes shard (shardLen logical bytes) into dst (a padded,
// 64-byte-multiple chunk), the way Shards.Insert packs a single slot. It is
// exposed standalone so callers working with bare [][]byte (such as
// Decoder.AddOriginalShard) don't need a whole Shards store just to pack
// one chunk.
func PackChunk(dst, shard []byte) {
	for i := range dst {
		dst[i] = 0
	}
	full := (len(shard) / 64) * 64
	copy(dst[:full], shard[:full])
	if tail := len(shard) - full; tail > 0 {
		packTail(dst[full:full+64], shard[full:])
	}
}

// ExtractChunk reverses PackChunk, reading shardLen logical bytes back out
// of src.
func ExtractChunk(src []byte, shardLen int) []byte {
	out := make([]byte, shardLen)
	full := (shardLen / 64) * 64
	copy(out[:full], src[:full])
	if tail := shardLen - full; tail > 0 {
		unpackTail(src[full:full+64], out[full:])
	}
	return out
}

// packTail writes tail (an even number of bytes, < 64) into chunk (exactly
// 64 bytes) using the low/high split every chunk already uses: the first
// half of tail occupies the chunk's low-byte plane, the second half its
// high-byte plane, leaving every other byte zero.
func packTail(chunk, tail []byte) {
	for i := range chunk {
		chunk[i] = 0
	}
	half := len(tail) / 2
	copy(chunk[0:half], tail[0:half])
	copy(chunk[32:32+half], tail[half:])
}

// unpackTail reverses packTail, writing len(tail) bytes (even, < 64) back
// out of chunk.
func unpackTail(chunk, tail []byte) {
	half := len(tail) / 2
	copy(tail[0:half], chunk[0:half])
	copy(tail[half:], chunk[32:32+half])
}

// ChunkCount returns how many 64-byte chunks shardLen logical bytes need.
func ChunkCount(shardLen int) int {
	return (shardLen + 63) / 64
}

// PaddedLen rounds shardLen up to a multiple of 64.
func PaddedLen(shardLen int) int {
	return ChunkCount(shardLen) * 64
}
