package rate

import "github.com/bpfs/gf16rs/internal/gf16"

// maxSkewOffset returns the highest absolute index into the FFT skew table
// either Encode/EncodeHighRate's block loop or a single-block transform
// reaches, given round (the power-of-two-rounded side: CeilPow2(parity)
// for Encode, CeilPow2(data) for EncodeHighRate) and other (the opposite,
// possibly-chunked side).
//
// Each block's driveFFT/driveIFFT call reads skew up to roughly two
// window-widths past its own window start (the "2*round-2" term, from the
// dist*2-1 offset the deepest butterfly stage indexes); the block loop
// then advances the window by round per additional block beyond the
// first, so the last block's window starts at (chunks-1)*round.
func maxSkewOffset(round, other int) int {
	if other <= round {
		return 2*round - 2
	}
	chunks := (other + round - 1) / round
	shifts := chunks - 1
	return 2*round - 2 + shifts*round
}

// Supported reports whether the given (dataShards, parityShards) pair can
// be encoded/decoded without the chosen driver reading past the end of
// the FFT skew table or exceeding the field's domain size. The rounded
// side is whichever count HighRate/LowRate selection (parityShards >
// dataShards picks HighRate, rounding from dataShards) would round up to
// a power of two; the other side is left unrounded and potentially
// chunked into blocks of the rounded size.
func Supported(dataShards, parityShards int) bool {
	if dataShards <= 0 || parityShards <= 0 {
		return false
	}
	if dataShards+parityShards > gf16.Order {
		return false
	}

	var round, other int
	if parityShards > dataShards {
		round = gf16.CeilPow2(dataShards)
		other = parityShards
	} else {
		round = gf16.CeilPow2(parityShards)
		other = dataShards
	}

	if maxSkewOffset(round, other) > gf16.Modulus-1 {
		return false
	}
	n := gf16.CeilPow2(round + other)
	return n <= gf16.Order
}
