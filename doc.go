// Package gf16rs implements Reed-Solomon erasure coding over GF(2^16)
// using an additive FFT, letting a caller recover up to RecoveryCount
// missing original shards out of OriginalCount+RecoveryCount total.
//
// Typical use:
//
//	enc, err := gf16rs.NewEncoder(originalCount, recoveryCount, shardBytes)
//	for _, shard := range originals {
//		enc.AddOriginalShard(shard)
//	}
//	encResult, err := enc.Encode()
//	recovery := encResult.Shards()
//
//	dec, err := gf16rs.NewDecoder(originalCount, recoveryCount, shardBytes)
//	dec.AddOriginalShard(0, originals[0])
//	dec.AddRecoveryShard(2, recovery[2])
//	// ... until at least originalCount shards total have been added
//	decResult, err := dec.Decode()
//	restored, ok := decResult.RestoredOriginal(3)
//
// The field-arithmetic tier (engine) is selected from the running CPU's
// feature set each time an Encoder or Decoder is constructed; see package
// engine for the available
// tiers and package rate for the encode/decode transforms built on top of
// them.
package gf16rs
