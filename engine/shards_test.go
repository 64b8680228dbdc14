package engine

import (
	"math/rand"
	"testing"

	"github.com/bpfs/gf16rs/internal/gf16"
	"github.com/stretchr/testify/require"
)

func randSlot(chunkLen int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, chunkLen)
	r.Read(b)
	return b
}

func TestShardsFFTRoundTripsThroughWrapperMethods(t *testing.T) {
	const m = 8
	const chunkLen = 64
	s := NewShards(m, chunkLen)
	input := make([][]byte, m)
	for i := range input {
		input[i] = randSlot(chunkLen, int64(i))
		copy(s.Slot(i), input[i])
	}

	var eng NoSimd
	s.IFFT(eng, 0, m, nil, m, gf16.FFTSkew()[:])
	s.FFT(eng, 0, m, m, gf16.FFTSkew()[:])

	for i := range input {
		require.Equal(t, input[i], s.Slot(i), "slot %d did not round-trip", i)
	}
}

func TestShardsSplitAtAndFlat2ShareBackingSlots(t *testing.T) {
	s := NewShards(6, 64)
	lo, hi := s.SplitAt(4)
	require.Equal(t, 4, lo.Len())
	require.Equal(t, 2, hi.Len())

	a, b := s.Flat2(0, 4, 2)
	require.Equal(t, lo.Raw()[:2], a)
	require.Equal(t, hi.Raw(), b)
}

func TestShardsXorWithinMatchesEngineXor(t *testing.T) {
	s := NewShards(4, 64)
	copy(s.Slot(0), randSlot(64, 1))
	copy(s.Slot(1), randSlot(64, 2))
	copy(s.Slot(2), randSlot(64, 1))
	copy(s.Slot(3), randSlot(64, 2))

	var eng NoSimd
	s.XorWithin(eng, 2, 0, 2)

	want2 := append([]byte(nil), randSlot(64, 1)...)
	eng.Xor(want2, randSlot(64, 1))
	want3 := append([]byte(nil), randSlot(64, 2)...)
	eng.Xor(want3, randSlot(64, 2))
	require.Equal(t, want2, s.Slot(2))
	require.Equal(t, want3, s.Slot(3))
}

func TestShardsDist4XorIntoIsSelfInverse(t *testing.T) {
	s := NewShards(4, 64)
	for i := 0; i < 4; i++ {
		copy(s.Slot(i), randSlot(64, int64(10+i)))
	}
	before := make([][]byte, 4)
	for i := range before {
		before[i] = append([]byte(nil), s.Slot(i)...)
	}

	var eng NoSimd
	s.Dist4XorInto(eng, 0, 1)
	s.Dist4XorInto(eng, 0, 1)

	for i := range before {
		require.Equal(t, before[i], s.Slot(i))
	}
}

func TestShardsButterfliesAgreeWithEngineButterfly(t *testing.T) {
	s := NewShards(2, 64)
	copy(s.Slot(0), randSlot(64, 5))
	copy(s.Slot(1), randSlot(64, 6))

	var eng NoSimd
	wantX := append([]byte(nil), s.Slot(0)...)
	wantY := append([]byte(nil), s.Slot(1)...)
	eng.FFTButterfly(wantX, wantY, 123)

	s.FFTButterfly(eng, 0, 1, 123)
	require.Equal(t, wantX, s.Slot(0))
	require.Equal(t, wantY, s.Slot(1))
}

func TestShardsZeroAndCopyWithin(t *testing.T) {
	s := NewShards(4, 64)
	for i := 0; i < 4; i++ {
		copy(s.Slot(i), randSlot(64, int64(20+i)))
	}

	s.CopyWithin(0, 2, 2)
	require.Equal(t, s.Slot(0), s.Slot(2))
	require.Equal(t, s.Slot(1), s.Slot(3))

	s.Zero(0, 2)
	zero := make([]byte, 64)
	require.Equal(t, zero, s.Slot(0))
	require.Equal(t, zero, s.Slot(1))
}
