//go:build amd64

package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// Ssse3 and Avx2 name the two amd64 SIMD dispatch targets, but are
// implemented in portable Go rather than hand-written assembly: without a
// way to assemble and differentially test real SIMD kernels in this
// environment, they run the identical nibble-split Mul16 algorithm NoSimd
// does, over the same 64-byte chunk granularity the table requires, so
// every tier is bit-identical by construction. Real assembly kernels
// could replace these bodies later without touching the Engine interface
// or any caller.
type Ssse3 struct{}

func (Ssse3) Name() string { return "ssse3" }

func (Ssse3) Xor(dst, src []byte) { xorBytes(dst, src) }

func (Ssse3) Mul(data []byte, logM gf16.FFE) { mulBytes(data, data, logM) }

func (Ssse3) FFTButterfly(x, y []byte, logM gf16.FFE) { fftButterfly(x, y, logM) }

func (Ssse3) IFFTButterfly(x, y []byte, logM gf16.FFE) { ifftButterfly(x, y, logM) }

func (Ssse3) FFT(store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	coreFFT(store, mtrunc, m, skew)
}

func (Ssse3) IFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	coreIFFT(store, mtrunc, xorRes, m, skew)
}

func (Ssse3) EvalPoly(store [][]byte, n int) { coreEvalPoly(store, n) }

func (Ssse3) XorWithin(store [][]byte, dst, src, count int) { coreXorWithin(store, dst, src, count) }

// Avx2 is the widest amd64 tier the CPU-feature probe can select.
type Avx2 struct{}

func (Avx2) Name() string { return "avx2" }

func (Avx2) Xor(dst, src []byte) { xorBytes(dst, src) }

func (Avx2) Mul(data []byte, logM gf16.FFE) { mulBytes(data, data, logM) }

func (Avx2) FFTButterfly(x, y []byte, logM gf16.FFE) { fftButterfly(x, y, logM) }

func (Avx2) IFFTButterfly(x, y []byte, logM gf16.FFE) { ifftButterfly(x, y, logM) }

func (Avx2) FFT(store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	coreFFT(store, mtrunc, m, skew)
}

func (Avx2) IFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	coreIFFT(store, mtrunc, xorRes, m, skew)
}

func (Avx2) EvalPoly(store [][]byte, n int) { coreEvalPoly(store, n) }

func (Avx2) XorWithin(store [][]byte, dst, src, count int) { coreXorWithin(store, dst, src, count) }
