package engine

import "github.com/bpfs/gf16rs/internal/gf16"

// xorBytes computes dst[i] ^= src[i] for every byte. Every tier shares this;
// there is no scalar/chunked distinction to make for XOR.
func xorBytes(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// mulBytes computes dst[] = src[] * m (logM = Log(m)) over the split-plane
// 64-byte chunk layout.
func mulBytes(dst, src []byte, logM gf16.FFE) {
	lut := &gf16.Mul16()[logM]
	for off := 0; off+64 <= len(dst); off += 64 {
		lo := src[off : off+32]
		hi := src[off+32 : off+64]
		for i, b := range lo {
			prod := lut.Lo[b] ^ lut.Hi[hi[i]]
			dst[off+i] = byte(prod)
			dst[off+i+32] = byte(prod >> 8)
		}
	}
}

// mulAddBytes computes dst[] ^= src[] * m.
func mulAddBytes(dst, src []byte, logM gf16.FFE) {
	lut := &gf16.Mul16()[logM]
	for off := 0; off+64 <= len(dst); off += 64 {
		lo := src[off : off+32]
		hi := src[off+32 : off+64]
		for i, b := range lo {
			prod := lut.Lo[b] ^ lut.Hi[hi[i]]
			dst[off+i] ^= byte(prod)
			dst[off+i+32] ^= byte(prod >> 8)
		}
	}
}

// fftButterfly is the forward DIT butterfly shared by every tier: x ^= y*m
// then y ^= x, collapsing to a plain xor when logM is gf16.Modulus (the
// zero-multiplier marker).
func fftButterfly(x, y []byte, logM gf16.FFE) {
	if len(x) == 0 {
		return
	}
	if logM == gf16.Modulus {
		xorBytes(y, x)
		return
	}
	mulAddBytes(x, y, logM)
	xorBytes(y, x)
}

// ifftButterfly is the inverse DIT butterfly: y ^= x then x ^= y*m.
func ifftButterfly(x, y []byte, logM gf16.FFE) {
	if len(x) == 0 {
		return
	}
	if logM == gf16.Modulus {
		xorBytes(y, x)
		return
	}
	xorBytes(y, x)
	mulAddBytes(x, y, logM)
}

// butterflyFunc is the shape FFTButterfly/IFFTButterfly share, parameterizing
// the driver loops below over which tier's multiply they use.
type butterflyFunc func(x, y []byte, logM gf16.FFE)

// dit4 is the 4-way flattening of two forward butterfly stages into one
// pass, used to cut the number of passes over memory in half.
func dit4(bfly butterflyFunc, work [][]byte, dist int, logM01, logM23, logM02 gf16.FFE) {
	if logM02 == gf16.Modulus {
		xorBytes(work[dist*2], work[0])
		xorBytes(work[dist*3], work[dist])
	} else {
		bfly(work[0], work[dist*2], logM02)
		bfly(work[dist], work[dist*3], logM02)
	}

	if logM01 == gf16.Modulus {
		xorBytes(work[dist], work[0])
	} else {
		bfly(work[0], work[dist], logM01)
	}

	if logM23 == gf16.Modulus {
		xorBytes(work[dist*3], work[dist*2])
	} else {
		bfly(work[dist*2], work[dist*3], logM23)
	}
}

// idit4 is the inverse of dit4.
func idit4(bfly butterflyFunc, work [][]byte, dist int, logM01, logM23, logM02 gf16.FFE) {
	if logM01 == gf16.Modulus {
		xorBytes(work[dist], work[0])
	} else {
		bfly(work[0], work[dist], logM01)
	}

	if logM23 == gf16.Modulus {
		xorBytes(work[dist*3], work[dist*2])
	} else {
		bfly(work[dist*2], work[dist*3], logM23)
	}

	if logM02 == gf16.Modulus {
		xorBytes(work[dist*2], work[0])
		xorBytes(work[dist*3], work[dist])
	} else {
		bfly(work[0], work[dist*2], logM02)
		bfly(work[dist], work[dist*3], logM02)
	}
}

// driveFFT is the shared forward-FFT driver: decimation-in-time,
// unrolled two stages at a time.
func driveFFT(bfly butterflyFunc, store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	dist4 := m
	dist := m >> 2
	for dist != 0 {
		for r := 0; r < mtrunc; r += dist4 {
			iEnd := r + dist
			logM01 := skew[iEnd-1]
			logM02 := skew[iEnd+dist-1]
			logM23 := skew[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				dit4(bfly, store[i:], dist, logM01, logM23, logM02)
			}
		}
		dist4 = dist
		dist >>= 2
	}

	if dist4 == 2 {
		for r := 0; r < mtrunc; r += 2 {
			logM := skew[r]
			if logM == gf16.Modulus {
				xorBytes(store[r+1], store[r])
			} else {
				bfly(store[r], store[r+1], logM)
			}
		}
	}
}

// driveIFFT is the shared inverse-FFT driver. It assumes store[0:mtrunc]
// already holds the input (and store[mtrunc:m] is zero); if xorRes is
// non-nil the transform result is XORed into it after the transform
// completes, so one routine covers both the plain decode path and the
// encoder's per-block accumulation.
//
// skew is indexed with the "-1" convention driveFFT uses (skew[j-1] at
// stage boundary j); a caller transforming a block that sits at position
// pos of the decode layout passes the window skew[pos:] (see
// rate.Codec.Encode).
func driveIFFT(bfly butterflyFunc, store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mtrunc; r += dist4 {
			iEnd := r + dist
			logM01 := skew[iEnd-1]
			logM02 := skew[iEnd+dist-1]
			logM23 := skew[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				idit4(bfly, store[i:], dist, logM01, logM23, logM02)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		if dist*2 != m {
			panic("engine: internal error, dist*2 != m")
		}
		logM := skew[dist-1]
		if logM == gf16.Modulus {
			for i := 0; i < dist; i++ {
				xorBytes(store[i+dist], store[i])
			}
		} else {
			for i := 0; i < dist; i++ {
				bfly(store[i], store[i+dist], logM)
			}
		}
	}

	if xorRes != nil {
		for i := 0; i < m; i++ {
			xorBytes(xorRes[i], store[i])
		}
	}
}

// coreFFT/coreIFFT are the NoSimd-tier (and, by extension, every SIMD tier's)
// entry points, bound to the nibble-table butterflies.
func coreFFT(store [][]byte, mtrunc, m int, skew []gf16.FFE) {
	driveFFT(fftButterfly, store, mtrunc, m, skew)
}

func coreIFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE) {
	driveIFFT(ifftButterfly, store, mtrunc, xorRes, m, skew)
}

// coreXorWithin XORs count consecutive slots starting at src into count
// consecutive slots starting at dst, both within store. Every tier shares
// it: like EvalPoly, it is pure XOR with no multiply to specialize.
func coreXorWithin(store [][]byte, dst, src, count int) {
	for i := 0; i < count; i++ {
		xorBytes(store[dst+i], store[src+i])
	}
}

// coreEvalPoly applies the formal derivative in place. Every tier shares
// it: it is pure XOR, with no multiply to specialize.
func coreEvalPoly(store [][]byte, n int) {
	for i := 1; i < n; i++ {
		width := ((i ^ (i - 1)) + 1) >> 1
		lo := i - width
		for j := 0; j < width; j++ {
			xorBytes(store[lo+j], store[i+j])
		}
	}
}

func naiveFFT(store [][]byte, mtrunc, m int, skew []gf16.FFE, n Naive) {
	driveFFT(n.FFTButterfly, store, mtrunc, m, skew)
}

func naiveIFFT(store [][]byte, mtrunc int, xorRes [][]byte, m int, skew []gf16.FFE, n Naive) {
	driveIFFT(n.IFFTButterfly, store, mtrunc, xorRes, m, skew)
}
