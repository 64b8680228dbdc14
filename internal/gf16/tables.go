// Package gf16 computes and holds the process-wide GF(2^16) tables the
// additive-FFT engine is built on: log/antilog, the Cantor-basis skew
// factors used by the FFT butterflies, the Walsh-Hadamard transform of
// the log table used to derive error locators during decode, and a
// nibble-split multiplication table shared by every engine tier.
package gf16

import (
	"math/bits"
	"sync"
	"time"

	"github.com/bpfs/gf16rs/internal/xlog"
)

// Bitwidth is the field's element width in bits.
const Bitwidth = 16

// Order is the number of elements in GF(2^16).
const Order = 1 << Bitwidth

// Modulus is Order-1, the multiplicative group size.
const Modulus = Order - 1

// Polynomial is the field's reduction polynomial x^16 + x^5 + x^3 + x^2 + 1,
// leading term included: 0x1002D == 0b1_0000_0000_0010_1101.
const Polynomial = 0x1002D

// FFE is a field element.
type FFE uint16

var (
	exp      *[Order]FFE
	log      *[Order]FFE
	fftSkew  *[Order]FFE
	logWalsh *[Order]FFE
	mul16    *[Order]Mul16LUT
)

// Mul16LUT holds the product planes for one multiplier, built from the
// 4-bit nibbles of a 16-bit field element the way a PSHUFB/VTBL lookup
// would: Lo is indexed by the element's low byte and Hi by its high byte,
// and XORing the two entries gives the full 16-bit product.
type Mul16LUT struct {
	Lo [256]FFE
	Hi [256]FFE
}

var once sync.Once

// Init computes every table exactly once; safe to call from multiple
// goroutines, and safe to call repeatedly.
func Init() {
	once.Do(func() {
		start := time.Now()
		initLogExp()
		initFFTSkew()
		initMul16()
		xlog.Logger().Debugf("gf16 tables initialized in %v", time.Since(start))
	})
}

// Exp returns the antilog table. Init must have run.
func Exp() *[Order]FFE { return exp }

// Log returns the log table; Log()[0] is undefined and never read.
func Log() *[Order]FFE { return log }

// FFTSkew returns the Cantor-basis skew factors, as logs; the FFT drivers
// read them as skew[j-1] within a window the caller slices out of this
// table. The table carries one slot past Modulus (fftSkew[Modulus], set to
// the sentinel value Modulus itself, the log of zero in these tables, which
// the butterflies treat as a plain XOR).
func FFTSkew() *[Order]FFE { return fftSkew }

// LogWalsh returns the Walsh-Hadamard transform of Log(), used by the
// decoder's error-locator construction.
func LogWalsh() *[Order]FFE { return logWalsh }

// Mul16 returns the nibble-split multiplication table indexed by the log of
// the multiplier.
func Mul16() *[Order]Mul16LUT { return mul16 }

func initLogExp() {
	// Cantor basis {beta_0 .. beta_15} fixing the ordering the additive FFT
	// operates over.
	cantorBasis := [Bitwidth]FFE{
		0x0001, 0xACCA, 0x3C0E, 0x163E,
		0xC582, 0xED2E, 0x914C, 0x4012,
		0x6C98, 0x10D8, 0x6A72, 0xB900,
		0xFDB8, 0xFB34, 0xFF38, 0x991E,
	}

	exp = &[Order]FFE{}
	log = &[Order]FFE{}

	state := 1
	for i := FFE(0); i < Modulus; i++ {
		exp[state] = i
		state <<= 1
		if state >= Order {
			state ^= Polynomial
		}
	}
	exp[0] = Modulus

	// Re-express logs in the Cantor basis.
	log[0] = 0
	for i := 0; i < Bitwidth; i++ {
		basis := cantorBasis[i]
		width := 1 << i
		for j := 0; j < width; j++ {
			log[j+width] = log[j] ^ basis
		}
	}
	for i := 0; i < Order; i++ {
		log[i] = exp[log[i]]
	}
	for i := 0; i < Order; i++ {
		exp[log[i]] = FFE(i)
	}
	exp[Modulus] = exp[0]
}

func initFFTSkew() {
	var temp [Bitwidth - 1]FFE
	for i := 1; i < Bitwidth; i++ {
		temp[i-1] = FFE(1 << i)
	}

	fftSkew = &[Order]FFE{}
	logWalsh = &[Order]FFE{}

	for m := 0; m < Bitwidth-1; m++ {
		step := 1 << (m + 1)
		fftSkew[1<<m-1] = 0

		for i := m; i < Bitwidth-1; i++ {
			s := 1 << (i + 1)
			for j := 1<<m - 1; j < s; j += step {
				fftSkew[j+s] = fftSkew[j] ^ temp[i]
			}
		}

		temp[m] = Modulus - log[mulLog(temp[m], log[temp[m]^1])]

		for i := m + 1; i < Bitwidth-1; i++ {
			sum := addMod(log[temp[i]^1], temp[m])
			temp[i] = mulLog(temp[i], sum)
		}
	}
	for i := 0; i < Modulus; i++ {
		fftSkew[i] = log[fftSkew[i]]
	}
	// fftSkew[Modulus] is never reached by the construction above (index
	// j+s never equals Modulus for any j/s pair the loop produces), so it
	// is set directly to the identity sentinel rather than left at 0.
	fftSkew[Modulus] = Modulus

	for i := 0; i < Order; i++ {
		logWalsh[i] = log[i]
	}
	logWalsh[0] = 0
	fwht(logWalsh, Order)
}

func initMul16() {
	mul16 = &[Order]Mul16LUT{}

	for logM := 0; logM < Order; logM++ {
		var tmp [64]FFE
		for nibble, shift := 0, 0; nibble < 4; nibble, shift = nibble+1, shift+4 {
			nibbleLUT := tmp[nibble*16:]
			for xNibble := 0; xNibble < 16; xNibble++ {
				nibbleLUT[xNibble] = mulLog(FFE(xNibble<<shift), FFE(logM))
			}
		}
		lut := &mul16[logM]
		for i := range lut.Lo {
			lut.Lo[i] = tmp[i&15] ^ tmp[(i>>4)+16]
			lut.Hi[i] = tmp[(i&15)+32] ^ tmp[(i>>4)+48]
		}
	}
}

// MulLog returns a * b, where logB is b's discrete log: a genuine field
// product where the right operand is supplied already as a log, since every
// caller already has the multiplier's log on hand and this avoids a log
// lookup per call.
func MulLog(a, logB FFE) FFE { return mulLog(a, logB) }

func mulLog(a, logB FFE) FFE {
	if a == 0 {
		return 0
	}
	return exp[addMod(log[a], logB)]
}

// AddMod adds two already-reduced exponents modulo Modulus.
func AddMod(a, b FFE) FFE { return addMod(a, b) }

func addMod(a, b FFE) FFE {
	sum := uint(a) + uint(b)
	return FFE(sum + sum>>Bitwidth)
}

// SubMod subtracts two already-reduced exponents modulo Modulus.
func SubMod(a, b FFE) FFE { return subMod(a, b) }

func subMod(a, b FFE) FFE {
	dif := uint(a) - uint(b)
	return FFE(dif + dif>>Bitwidth)
}

// CeilPow2 returns the smallest power of two >= n, for n >= 1.
func CeilPow2(n int) int {
	const w = bits.UintSize
	return 1 << (w - bits.LeadingZeros(uint(n-1)))
}

// FWHT is the decimation-in-time fast Walsh-Hadamard transform used to
// evaluate the error-locator polynomial. mtrunc bounds the non-zero prefix.
func fwht(data *[Order]FFE, mtrunc int) {
	dist := 1
	dist4 := 4
	for dist4 <= Order {
		for r := 0; r < mtrunc; r += dist4 {
			d := uint16(dist)
			off := uint16(r)
			for i := uint16(0); i < d; i++ {
				t0 := data[off]
				t1 := data[off+d]
				t2 := data[off+d*2]
				t3 := data[off+d*3]

				t0, t1 = addMod(t0, t1), subMod(t0, t1)
				t2, t3 = addMod(t2, t3), subMod(t2, t3)
				t0, t2 = addMod(t0, t2), subMod(t0, t2)
				t1, t3 = addMod(t1, t3), subMod(t1, t3)

				data[off] = t0
				data[off+d] = t1
				data[off+d*2] = t2
				data[off+d*3] = t3
				off++
			}
		}
		dist = dist4
		dist4 <<= 2
	}
}

// FWHT runs the fast Walsh-Hadamard transform in place over data, truncated
// to the first mtrunc entries (the remainder is treated as zero on input).
func FWHT(data *[Order]FFE, mtrunc int) { fwht(data, mtrunc) }
