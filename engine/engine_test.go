package engine

import (
	"math/rand"
	"testing"

	"github.com/bpfs/gf16rs/internal/gf16"
	"github.com/stretchr/testify/require"
)

func init() { gf16.Init() }

func randChunks(t *testing.T, n, chunkLen int) [][]byte {
	t.Helper()
	r := rand.New(rand.NewSource(1))
	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, chunkLen)
		r.Read(out[i])
	}
	return out
}

func cloneChunks(in [][]byte) [][]byte {
	out := make([][]byte, len(in))
	for i, c := range in {
		out[i] = append([]byte(nil), c...)
	}
	return out
}

var engines = []Engine{Naive{}, NoSimd{}}

func TestMulAgreesAcrossTiers(t *testing.T) {
	data := randChunks(t, 1, 128)[0]
	for _, logM := range []gf16.FFE{0, 1, 12345, gf16.Modulus - 1} {
		var want []byte
		for i, eng := range engines {
			got := append([]byte(nil), data...)
			eng.Mul(got, logM)
			if i == 0 {
				want = got
				continue
			}
			require.Equal(t, want, got, "tier %s disagrees at logM=%d", eng.Name(), logM)
		}
	}
}

func TestButterfliesAgreeAcrossTiers(t *testing.T) {
	base := randChunks(t, 2, 128)
	for _, logM := range []gf16.FFE{0, 7, gf16.Modulus} {
		var wantX, wantY []byte
		for i, eng := range engines {
			x := append([]byte(nil), base[0]...)
			y := append([]byte(nil), base[1]...)
			eng.FFTButterfly(x, y, logM)
			if i == 0 {
				wantX, wantY = x, y
				continue
			}
			require.Equal(t, wantX, x)
			require.Equal(t, wantY, y)
		}
	}
}

func TestFFTRoundTripsWithIFFT(t *testing.T) {
	const m = 8
	for _, eng := range engines {
		input := randChunks(t, m, 64)
		work := cloneChunks(input)
		eng.IFFT(work, m, nil, m, gf16.FFTSkew()[:])
		eng.FFT(work, m, m, gf16.FFTSkew()[:])
		require.Equal(t, input, work, "tier %s IFFT/FFT did not round-trip", eng.Name())
	}
}

func TestEvalPolyAgreesAcrossTiers(t *testing.T) {
	const n = 16
	base := randChunks(t, n, 64)
	var want [][]byte
	for i, eng := range engines {
		work := cloneChunks(base)
		eng.EvalPoly(work, n)
		if i == 0 {
			want = work
			continue
		}
		require.Equal(t, want, work, "tier %s disagrees", eng.Name())
	}
}

func TestXorWithinAgreesAcrossTiers(t *testing.T) {
	for _, eng := range engines {
		store := randChunks(t, 4, 64)
		want := cloneChunks(store)
		eng.Xor(want[2], want[0])
		eng.Xor(want[3], want[1])

		eng.XorWithin(store, 2, 0, 2)
		require.Equal(t, want, store, "tier %s disagrees", eng.Name())
	}
}

func TestXorIsSelfInverse(t *testing.T) {
	a := randChunks(t, 1, 64)[0]
	b := randChunks(t, 1, 64)[0]
	orig := append([]byte(nil), a...)
	NoSimd{}.Xor(a, b)
	NoSimd{}.Xor(a, b)
	require.Equal(t, orig, a)
}
