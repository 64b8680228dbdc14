// Package engine provides the field-arithmetic tier the rate-layer encoder
// and decoder drive: XOR, scaled multiply, FFT/IFFT butterflies and the
// formal-derivative step the error-locator evaluation needs. Every
// implementation in this package computes bit-identical results for the
// same input; they differ only in how many bytes they process per inner
// loop iteration.
//
// Naive is an element-at-a-time reference used to validate the rest, and
// NoSimd is the portable baseline every tier shares; Ssse3/Avx2/Neon are
// selected from the running CPU's feature set at construction time.
package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// Engine is the capability set every hardware tier implements. All methods
// operate on byte slices holding GF(2^16) elements in the split-plane layout
// described in shards.go: for each 64-byte chunk, bytes [0,32)
// hold the low byte of elements 0..31 and bytes [32,64) hold their high
// byte.
type Engine interface {
	// Name identifies the tier for logging and diagnostics.
	Name() string

	// Xor computes dst ^= src over equal-length slices.
	Xor(dst, src []byte)

	// Mul computes data[] = data[] * m, where logM is m's discrete log.
	Mul(data []byte, logM gf16.FFE)

	// FFTButterfly computes the forward decimation-in-time butterfly:
	// x ^= y*m; y ^= x (post-update), where logM is m's discrete log. A
	// logM of gf16.Modulus marks a zero multiplier: the multiply step is
	// skipped and only y ^= x remains.
	FFTButterfly(x, y []byte, logM gf16.FFE)

	// IFFTButterfly computes the inverse decimation-in-time butterfly:
	// y ^= x; x ^= y*m (the steps of FFTButterfly in reverse order).
	IFFTButterfly(x, y []byte, logM gf16.FFE)

	// FFT runs the in-place additive FFT over store[0:m], with input
	// assumed to already be zero beyond mtrunc, using skew as the
	// per-stage multiplier table (indexed skew[j-1] for stage boundary j).
	FFT(store [][]byte, mtrunc, m int, skew []gf16.FFE)

	// IFFT runs the in-place additive inverse FFT over store[0:m],
	// truncated the same way FFT is. If xorRes is non-nil, the transform
	// result is XORed into xorRes[0:m] after the transform completes
	// (used by the encoder to accumulate contributions from more than m
	// data shards).
	IFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE)

	// EvalPoly applies the formal derivative in place over store[0:n],
	// the step that turns an error locator's FFT into decoding
	// coefficients.
	EvalPoly(store [][]byte, n int)

	// XorWithin XORs count consecutive slots starting at src into the
	// count consecutive slots starting at dst, both within the same
	// store: store[dst+i] ^= store[src+i] for i in [0,count). Used to
	// merge two non-overlapping ranges of the same work buffer, such as
	// reconciling a block's contribution into an accumulator range.
	XorWithin(store [][]byte, dst, src, count int)
}
