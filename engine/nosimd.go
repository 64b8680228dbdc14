package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// NoSimd is the portable scalar tier: it always works, on every
// architecture, and every other tier's output must match it exactly. It
// processes each 64-byte chunk's two 32-byte planes together via the
// nibble Mul16 lookup, and is the fallback whenever no faster tier is
// detected for the running CPU.
type NoSimd struct{}

func (NoSimd) Name() string { return "nosimd" }

func (NoSimd) Xor(dst, src []byte) { xorBytes(dst, src) }

func (NoSimd) Mul(data []byte, logM gf16.FFE) { mulBytes(data, data, logM) }

func (NoSimd) FFTButterfly(x, y []byte, logM gf16.FFE) { fftButterfly(x, y, logM) }

func (NoSimd) IFFTButterfly(x, y []byte, logM gf16.FFE) { ifftButterfly(x, y, logM) }

func (NoSimd) FFT(store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	coreFFT(store, mtrunc, m, skew)
}

func (NoSimd) IFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	coreIFFT(store, mtrunc, xorRes, m, skew)
}

func (NoSimd) EvalPoly(store [][]byte, n int) { coreEvalPoly(store, n) }

func (NoSimd) XorWithin(store [][]byte, dst, src, count int) { coreXorWithin(store, dst, src, count) }
