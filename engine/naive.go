package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// Naive is the element-by-element reference tier: it looks up Log/Exp per
// 16-bit element instead of going through the nibble-split Mul16 table,
// trading throughput for an implementation simple enough to trust as the
// baseline every other tier is checked against.
type Naive struct{}

func (Naive) Name() string { return "naive" }

func (Naive) Xor(dst, src []byte) { xorBytes(dst, src) }

func (Naive) Mul(data []byte, logM gf16.FFE) {
	naiveMul(data, data, logM)
}

func (Naive) FFTButterfly(x, y []byte, logM gf16.FFE) {
	if len(x) == 0 {
		return
	}
	if logM == gf16.Modulus {
		xorBytes(y, x)
		return
	}
	naiveMulAdd(x, y, logM)
	xorBytes(y, x)
}

func (Naive) IFFTButterfly(x, y []byte, logM gf16.FFE) {
	if len(x) == 0 {
		return
	}
	if logM == gf16.Modulus {
		xorBytes(y, x)
		return
	}
	xorBytes(y, x)
	naiveMulAdd(x, y, logM)
}

func (n Naive) FFT(store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	naiveFFT(store, mtrunc, m, skew, n)
}

func (n Naive) IFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	naiveIFFT(store, mtrunc, xorRes, m, skew, n)
}

func (Naive) EvalPoly(store [][]byte, n int) { coreEvalPoly(store, n) }

func (Naive) XorWithin(store [][]byte, dst, src, count int) { coreXorWithin(store, dst, src, count) }

// element reads the 16-bit value at element index i from a chunk using the
// split-plane layout: low byte at i%32 of the chunk holding i, high byte at
// 32+i%32 of that same chunk.
func element(data []byte, i int) gf16.FFE {
	chunk := (i / 32) * 64
	off := i % 32
	return gf16.FFE(data[chunk+off]) | gf16.FFE(data[chunk+off+32])<<8
}

func setElement(data []byte, i int, v gf16.FFE) {
	chunk := (i / 32) * 64
	off := i % 32
	data[chunk+off] = byte(v)
	data[chunk+off+32] = byte(v >> 8)
}

func naiveMulOne(v, logM gf16.FFE) gf16.FFE {
	if v == 0 {
		return 0
	}
	return gf16.Exp()[gf16.AddMod(gf16.Log()[v], logM)]
}

func naiveMul(dst, src []byte, logM gf16.FFE) {
	n := len(src) / 2
	for i := 0; i < n; i++ {
		setElement(dst, i, naiveMulOne(element(src, i), logM))
	}
}

func naiveMulAdd(dst, src []byte, logM gf16.FFE) {
	n := len(src) / 2
	for i := 0; i < n; i++ {
		v := element(dst, i) ^ naiveMulOne(element(src, i), logM)
		setElement(dst, i, v)
	}
}
