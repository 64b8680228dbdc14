package rate

import (
	"math/rand"
	"testing"

	"github.com/bpfs/gf16rs/engine"
	"github.com/stretchr/testify/require"
)

func randShards(n, chunkLen int, seed int64) [][]byte {
	r := rand.New(rand.NewSource(seed))
	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, chunkLen)
		r.Read(out[i])
	}
	return out
}

func TestCodecEncodeReconstructRecoversLostShards(t *testing.T) {
	cases := []struct {
		name               string
		dataShards         int
		parityShards       int
		chunkLen           int
		missingDataIndices []int
	}{
		{"low-rate-one-loss", 10, 4, 64, []int{3}},
		{"low-rate-full-loss", 10, 4, 64, []int{0, 1, 2, 3}},
		{"parity-exceeds-data", 3, 10, 64, []int{0, 1}},
		{"single-data-shard", 1, 3, 64, []int{0}},
		{"multi-chunk", 6, 4, 192, []int{2, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codec := NewCodec[engine.NoSimd](tc.dataShards, tc.parityShards)
			data := randShards(tc.dataShards, tc.chunkLen, 42)
			parity := codec.Encode(data)
			require.Len(t, parity, tc.parityShards)

			shards := make([][]byte, tc.dataShards+tc.parityShards)
			copy(shards, data)
			copy(shards[tc.dataShards:], parity)

			missing := make(map[int]bool)
			for _, i := range tc.missingDataIndices {
				missing[i] = true
				shards[i] = nil
			}

			restored := codec.Reconstruct(shards, tc.chunkLen)
			require.Len(t, restored, len(missing))
			for i := range missing {
				require.Equal(t, data[i], restored[i], "shard %d not correctly restored", i)
			}
		})
	}
}

func TestCodecReconstructReturnsNilWhenNothingMissing(t *testing.T) {
	codec := NewCodec[engine.NoSimd](5, 3)
	data := randShards(5, 64, 7)
	parity := codec.Encode(data)
	shards := append(append([][]byte{}, data...), parity...)
	require.Nil(t, codec.Reconstruct(shards, 64))
}

func TestHighRateEncodeReconstructRecoversLostShards(t *testing.T) {
	cases := []struct {
		name               string
		dataShards         int
		parityShards       int
		chunkLen           int
		missingDataIndices []int
	}{
		{"parity-exceeds-data-round", 4, 10, 64, []int{0, 2}},
		{"single-data-shard", 1, 5, 64, []int{0}},
		{"large-parity-dual-of-lowrate", 1000, 35000, 64, []int{3, 501, 999}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !Supported(tc.dataShards, tc.parityShards) {
				t.Fatalf("case %q not supported", tc.name)
			}
			hr := NewHighRate[engine.NoSimd](tc.dataShards, tc.parityShards)
			data := randShards(tc.dataShards, tc.chunkLen, 42)
			parity := hr.Encode(data)
			require.Len(t, parity, tc.parityShards)

			shards := make([][]byte, tc.dataShards+tc.parityShards)
			copy(shards, data)
			copy(shards[tc.dataShards:], parity)

			missing := make(map[int]bool)
			for _, i := range tc.missingDataIndices {
				missing[i] = true
				shards[i] = nil
			}

			restored := hr.Reconstruct(shards, tc.chunkLen)
			require.Len(t, restored, len(missing))
			for i := range missing {
				require.Equal(t, data[i], restored[i], "shard %d not correctly restored", i)
			}
		})
	}
}

func TestLowRateHandlesLargeDataDualOfHighRate(t *testing.T) {
	const dataShards, parityShards, chunkLen = 35000, 1000, 64
	require.True(t, Supported(dataShards, parityShards))

	lr := NewLowRate[engine.NoSimd](dataShards, parityShards)
	data := randShards(dataShards, chunkLen, 7)
	parity := lr.Encode(data)
	require.Len(t, parity, parityShards)

	shards := make([][]byte, dataShards+parityShards)
	copy(shards, data)
	copy(shards[dataShards:], parity)
	shards[10] = nil
	shards[20000] = nil

	restored := lr.Reconstruct(shards, chunkLen)
	require.Len(t, restored, 2)
	require.Equal(t, data[10], restored[10])
	require.Equal(t, data[20000], restored[20000])
}

func TestSupportedRejectsUnsupportedCounts(t *testing.T) {
	require.False(t, Supported(0, 1))
	require.False(t, Supported(1, 0))
	require.False(t, Supported(40000, 40000))
	require.True(t, Supported(1000, 35000))
	require.True(t, Supported(35000, 1000))
}
