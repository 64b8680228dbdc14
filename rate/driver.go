// Package rate implements the encode/decode drivers the root package's
// Encoder and Decoder call into once shard data has been packed into the
// engine's split-plane chunk layout, restated as Engine-generic methods
// so the field-arithmetic tier is fixed at compile time instead of
// dispatched through an interface on every call.
//
// Codec rounds the FFT domain from the parity count (LowRate's regime,
// parityShards <= dataShards); its HighRate-prefixed methods round from
// the data count instead (HighRate's regime, parityShards > dataShards),
// so whichever shard count is smaller bounds the encoder's transform size
// rather than their sum. See DESIGN.md for the derivation.
package rate

import (
	"sync"

	"github.com/bpfs/gf16rs/engine"
	"github.com/bpfs/gf16rs/internal/gf16"
)

// Codec is the generic encode/decode driver. E pins the engine tier.
type Codec[E engine.Engine] struct {
	dataShards   int
	parityShards int

	// workPool reuses the scratch [][]byte buffer Encode/Reconstruct need
	// across calls on the same Codec.
	workPool sync.Pool
}

// NewCodec returns a driver for the given shard counts, ensuring the
// process-wide GF(2^16) tables are initialized.
func NewCodec[E engine.Engine](dataShards, parityShards int) *Codec[E] {
	gf16.Init()
	return &Codec[E]{dataShards: dataShards, parityShards: parityShards}
}

// workBuffer holds n slots of chunkLen bytes each, grown or reallocated as
// needed and returned to the pool by the caller when done.
func (c *Codec[E]) workBuffer(n, chunkLen int) [][]byte {
	if w, ok := c.workPool.Get().([][]byte); ok && cap(w) >= n {
		w = w[:n]
		for i := range w {
			if cap(w[i]) < chunkLen {
				w[i] = make([]byte, chunkLen)
			} else {
				w[i] = w[i][:chunkLen]
				zero(w[i])
			}
		}
		return w
	}
	w := make([][]byte, n)
	for i := range w {
		w[i] = make([]byte, chunkLen)
	}
	return w
}

func (c *Codec[E]) DataShards() int   { return c.dataShards }
func (c *Codec[E]) ParityShards() int { return c.parityShards }

// Encode computes c.parityShards recovery chunks from c.dataShards data
// chunks, all padded to the same chunk length (a multiple of 64), in
// terms of Engine.IFFT/FFT.
func (c *Codec[E]) Encode(data [][]byte) [][]byte {
	var eng E
	k, p := c.dataShards, c.parityShards
	chunkLen := len(data[0])
	m := gf16.CeilPow2(p)

	work := c.workBuffer(m*2, chunkLen)
	defer c.workPool.Put(work)

	mtrunc := m
	if k < mtrunc {
		mtrunc = k
	}

	// The first data block sits at position m of Reconstruct's layout, so
	// its window starts at m; Engine.IFFT indexes it with the "-1"
	// convention (see engine.driveIFFT). Each later block moves it by m.
	skew := gf16.FFTSkew()[m:]

	for i := 0; i < mtrunc; i++ {
		copy(work[i], data[i])
	}
	eng.IFFT(work[:m], mtrunc, nil, m, skew)

	if m < k {
		sh := data
		cur := skew
		for i := m; i+m <= k; i += m {
			sh = sh[m:]
			cur = cur[m:]
			for j := 0; j < m; j++ {
				copy(work[m+j], sh[j])
			}
			eng.IFFT(work[m:2*m], m, work[:m], m, cur)
		}
		if lastCount := k % m; lastCount != 0 {
			sh = sh[m:]
			cur = cur[m:]
			for j := 0; j < lastCount; j++ {
				copy(work[m+j], sh[j])
			}
			for j := lastCount; j < m; j++ {
				zero(work[m+j])
			}
			eng.IFFT(work[m:2*m], lastCount, work[:m], m, cur)
		}
	}

	eng.FFT(work[:m], p, m, gf16.FFTSkew()[:])

	parity := make([][]byte, p)
	for i := 0; i < p; i++ {
		parity[i] = make([]byte, chunkLen)
		copy(parity[i], work[i])
	}
	return parity
}

// Reconstruct recovers every missing data chunk it can from the shards
// slice (length dataShards+parityShards, nil entries marking loss). The
// caller is responsible for confirming at least dataShards entries are
// present; Reconstruct assumes that invariant already holds.
func (c *Codec[E]) Reconstruct(shards [][]byte, chunkLen int) map[int][]byte {
	var eng E
	k, p := c.dataShards, c.parityShards

	m := gf16.CeilPow2(p)
	n := gf16.CeilPow2(m + k)

	var errLocs [gf16.Order]gf16.FFE
	for i := 0; i < p; i++ {
		if shards[i+k] == nil {
			errLocs[i] = 1
		}
	}
	for i := p; i < m; i++ {
		errLocs[i] = 1
	}
	missing := false
	for i := 0; i < k; i++ {
		if shards[i] == nil {
			errLocs[i+m] = 1
			missing = true
		}
	}
	if !missing {
		return nil
	}

	gf16.FWHT(&errLocs, m+k)
	logWalsh := gf16.LogWalsh()
	for i := 0; i < gf16.Order; i++ {
		errLocs[i] = gf16.FFE((uint(errLocs[i]) * uint(logWalsh[i])) % gf16.Modulus)
	}
	gf16.FWHT(&errLocs, gf16.Order)

	work := c.workBuffer(n, chunkLen)
	defer c.workPool.Put(work)

	for i := 0; i < p; i++ {
		if shards[i+k] != nil {
			copy(work[i], shards[i+k])
			eng.Mul(work[i], errLocs[i])
		}
	}
	for i := 0; i < k; i++ {
		if shards[i] != nil {
			copy(work[m+i], shards[i])
			eng.Mul(work[m+i], errLocs[m+i])
		}
	}

	skew := gf16.FFTSkew()[:]
	eng.IFFT(work, m+k, nil, n, skew)
	eng.EvalPoly(work, n)
	eng.FFT(work, m+k, n, skew)

	restored := make(map[int][]byte)
	for i := 0; i < k; i++ {
		if shards[i] == nil {
			out := make([]byte, chunkLen)
			copy(out, work[i+m])
			eng.Mul(out, gf16.Modulus-errLocs[i+m])
			restored[i] = out
		}
	}
	return restored
}

// EncodeHighRate computes c.parityShards recovery chunks from c.dataShards
// data chunks the way Encode does, but rounds the FFT domain from the data
// count instead of the parity count: kr = CeilPow2(dataShards). Since
// dataShards <= kr always, the data side never needs Encode's per-block
// input chunking; instead, because parityShards can exceed kr, the parity
// side is produced in successive kr-wide blocks, each a forward FFT of the
// same IFFT'd data evaluated at a distinct coset (the skew window shifted
// by kr per block, mirroring Encode's input-chunking shift but applied to
// the output side).
func (c *Codec[E]) EncodeHighRate(data [][]byte) [][]byte {
	var eng E
	k, p := c.dataShards, c.parityShards
	chunkLen := len(data[0])
	kr := gf16.CeilPow2(k)

	base := c.workBuffer(kr, chunkLen)
	defer c.workPool.Put(base)
	for i := 0; i < k; i++ {
		copy(base[i], data[i])
	}
	for i := k; i < kr; i++ {
		zero(base[i])
	}
	eng.IFFT(base[:kr], k, nil, kr, gf16.FFTSkew()[:])

	parity := make([][]byte, p)
	for i := range parity {
		parity[i] = make([]byte, chunkLen)
	}

	scratch := c.workBuffer(kr, chunkLen)
	defer c.workPool.Put(scratch)

	cur := gf16.FFTSkew()[kr:]
	for start := 0; start < p; start += kr {
		count := kr
		if start+count > p {
			count = p - start
		}
		for i := 0; i < kr; i++ {
			copy(scratch[i], base[i])
		}
		eng.FFT(scratch[:kr], count, kr, cur)
		for i := 0; i < count; i++ {
			copy(parity[start+i], scratch[i])
		}
		cur = cur[kr:]
	}

	return parity
}

// ReconstructHighRate recovers missing data chunks the way Reconstruct
// does, but with the rounded (kr = CeilPow2(dataShards)) side holding data
// instead of parity: errLocs[0:dataShards) carries missing-data flags,
// errLocs[dataShards:kr) is padding that EncodeHighRate fixes at zero (so
// it is not marked erased), errLocs[kr:kr+parityShards) carries
// missing-parity flags, and every slot from kr+parityShards up to the
// domain size n is marked erased, since EncodeHighRate's codeword is not
// zero there.
func (c *Codec[E]) ReconstructHighRate(shards [][]byte, chunkLen int) map[int][]byte {
	var eng E
	k, p := c.dataShards, c.parityShards
	kr := gf16.CeilPow2(k)
	n := gf16.CeilPow2(kr + p)

	var errLocs [gf16.Order]gf16.FFE
	missing := false
	for i := 0; i < k; i++ {
		if shards[i] == nil {
			errLocs[i] = 1
			missing = true
		}
	}
	if !missing {
		return nil
	}
	for i := 0; i < p; i++ {
		if shards[k+i] == nil {
			errLocs[kr+i] = 1
		}
	}
	for i := kr + p; i < n; i++ {
		errLocs[i] = 1
	}

	gf16.FWHT(&errLocs, n)
	logWalsh := gf16.LogWalsh()
	for i := 0; i < gf16.Order; i++ {
		errLocs[i] = gf16.FFE((uint(errLocs[i]) * uint(logWalsh[i])) % gf16.Modulus)
	}
	gf16.FWHT(&errLocs, gf16.Order)

	work := c.workBuffer(n, chunkLen)
	defer c.workPool.Put(work)

	for i := 0; i < k; i++ {
		if shards[i] != nil {
			copy(work[i], shards[i])
			eng.Mul(work[i], errLocs[i])
		}
	}
	for i := 0; i < p; i++ {
		if shards[k+i] != nil {
			copy(work[kr+i], shards[k+i])
			eng.Mul(work[kr+i], errLocs[kr+i])
		}
	}

	skew := gf16.FFTSkew()[:]
	eng.IFFT(work, kr+p, nil, n, skew)
	eng.EvalPoly(work, n)
	eng.FFT(work, kr+p, n, skew)

	restored := make(map[int][]byte)
	for i := 0; i < k; i++ {
		if shards[i] == nil {
			out := make([]byte, chunkLen)
			copy(out, work[i])
			eng.Mul(out, gf16.Modulus-errLocs[i])
			restored[i] = out
		}
	}
	return restored
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
