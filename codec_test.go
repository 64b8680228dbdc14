package gf16rs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randShard(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name          string
		original      int
		recovery      int
		shardBytes    int
		missingOrig   []int
		missingRecov  []int // recovery shards never added, to exercise partial-arrival decode
	}{
		{"low-rate", 10, 4, 128, []int{1, 5}, []int{0, 1}},
		{"high-rate", 3, 8, 64, []int{0, 2}, nil},
		{"odd-shard-size", 4, 2, 66, []int{0}, nil},
		{"single-original", 1, 2, 32, []int{0}, []int{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			originals := make([][]byte, tc.original)
			for i := range originals {
				originals[i] = randShard(tc.shardBytes, int64(100+i))
			}

			enc, err := NewEncoder(tc.original, tc.recovery, tc.shardBytes)
			require.NoError(t, err)
			for _, shard := range originals {
				require.NoError(t, enc.AddOriginalShard(shard))
			}
			encResult, err := enc.Encode()
			require.NoError(t, err)
			recovery := encResult.Shards()
			require.Len(t, recovery, tc.recovery)
			for _, r := range recovery {
				require.Len(t, r, tc.shardBytes)
			}

			missingOrig := make(map[int]bool)
			for _, i := range tc.missingOrig {
				missingOrig[i] = true
			}
			missingRecov := make(map[int]bool)
			for _, i := range tc.missingRecov {
				missingRecov[i] = true
			}

			dec, err := NewDecoder(tc.original, tc.recovery, tc.shardBytes)
			require.NoError(t, err)
			for i, shard := range originals {
				if missingOrig[i] {
					continue
				}
				require.NoError(t, dec.AddOriginalShard(i, shard))
			}
			for i, shard := range recovery {
				if missingRecov[i] {
					continue
				}
				require.NoError(t, dec.AddRecoveryShard(i, shard))
			}

			decResult, err := dec.Decode()
			require.NoError(t, err)
			for i := range missingOrig {
				got, ok := decResult.RestoredOriginal(i)
				require.True(t, ok, "shard %d should have been restored", i)
				require.Equal(t, originals[i], got)
			}
		})
	}
}

func TestEncoderRejectsWrongShardSize(t *testing.T) {
	enc, err := NewEncoder(4, 2, 64)
	require.NoError(t, err)
	err = enc.AddOriginalShard(make([]byte, 32))
	require.ErrorIs(t, err, ErrDifferentShardSize{Want: 64, Got: 32})
}

func TestEncoderRejectsTooManyShards(t *testing.T) {
	enc, err := NewEncoder(1, 2, 64)
	require.NoError(t, err)
	require.NoError(t, enc.AddOriginalShard(make([]byte, 64)))
	err = enc.AddOriginalShard(make([]byte, 64))
	require.ErrorIs(t, err, ErrTooManyOriginalShards{OriginalCount: 1})
}

func TestEncodeFailsWithTooFewShards(t *testing.T) {
	enc, err := NewEncoder(3, 2, 64)
	require.NoError(t, err)
	require.NoError(t, enc.AddOriginalShard(make([]byte, 64)))
	_, err = enc.Encode()
	require.ErrorIs(t, err, ErrTooFewOriginalShards{OriginalCount: 3, Received: 1})
}

func TestDecodeFailsWithTooFewShards(t *testing.T) {
	dec, err := NewDecoder(3, 2, 64)
	require.NoError(t, err)
	require.NoError(t, dec.AddOriginalShard(0, make([]byte, 64)))
	_, err = dec.Decode()
	require.Error(t, err)
}

func TestDecoderRejectsDuplicateAndOutOfRangeIndices(t *testing.T) {
	dec, err := NewDecoder(2, 2, 64)
	require.NoError(t, err)
	require.NoError(t, dec.AddOriginalShard(0, make([]byte, 64)))
	require.ErrorIs(t, dec.AddOriginalShard(0, make([]byte, 64)), ErrDuplicateOriginalShardIndex{Index: 0})
	require.ErrorIs(t, dec.AddOriginalShard(5, make([]byte, 64)), ErrInvalidOriginalShardIndex{OriginalCount: 2, Index: 5})
	require.ErrorIs(t, dec.AddRecoveryShard(5, make([]byte, 64)), ErrInvalidRecoveryShardIndex{RecoveryCount: 2, Index: 5})
}

func TestNewEncoderValidatesShardSize(t *testing.T) {
	_, err := NewEncoder(2, 2, 0)
	require.ErrorIs(t, err, ErrInvalidShardSize)
	_, err = NewEncoder(2, 2, 3)
	require.ErrorIs(t, err, ErrInvalidShardSize)
	_, err = NewEncoder(0, 2, 64)
	require.ErrorIs(t, err, ErrUnsupportedShardCount)
}
