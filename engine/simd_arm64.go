//go:build arm64

package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// Neon is the arm64 tier, selected when cpufeature.Detect reports NEON. As
// with Ssse3/Avx2 on amd64, it runs the same portable nibble-split Mul16
// algorithm as NoSimd rather than hand-written NEON intrinsics, for the
// reasons given in simd_amd64.go.
type Neon struct{}

func (Neon) Name() string { return "neon" }

func (Neon) Xor(dst, src []byte) { xorBytes(dst, src) }

func (Neon) Mul(data []byte, logM gf16.FFE) { mulBytes(data, data, logM) }

func (Neon) FFTButterfly(x, y []byte, logM gf16.FFE) { fftButterfly(x, y, logM) }

func (Neon) IFFTButterfly(x, y []byte, logM gf16.FFE) { ifftButterfly(x, y, logM) }

func (Neon) FFT(store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	coreFFT(store, mtrunc, m, skew)
}

func (Neon) IFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	coreIFFT(store, mtrunc, xorRes, m, skew)
}

func (Neon) EvalPoly(store [][]byte, n int) { coreEvalPoly(store, n) }

func (Neon) XorWithin(store [][]byte, dst, src, count int) { coreXorWithin(store, dst, src, count) }
