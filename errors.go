package gf16rs

import "fmt"

// ErrInvalidShardSize is returned when a shard byte length is zero or odd;
// every shard must be a positive, even number of bytes (GF(2^16) elements
// are two bytes wide).
var ErrInvalidShardSize = errString("gf16rs: shard size must be a positive even number of bytes")

// ErrUnsupportedShardCount is returned when the data or recovery shard
// count is zero, their sum exceeds the field's addressing range, or the
// pair would otherwise drive the rate layer's FFT past the bounds of its
// skew table; see rate.Supported.
var ErrUnsupportedShardCount = errString("gf16rs: unsupported original/recovery shard count")

type errString string

func (e errString) Error() string { return string(e) }

// ErrTooFewOriginalShards is returned by Encode when fewer original shards
// were added than the encoder was constructed for.
type ErrTooFewOriginalShards struct {
	OriginalCount int
	Received      int
}

func (e ErrTooFewOriginalShards) Error() string {
	return fmt.Sprintf("gf16rs: too few original shards: need %d, got %d", e.OriginalCount, e.Received)
}

// ErrTooManyOriginalShards is returned by Encoder.AddOriginalShard once the
// encoder already holds OriginalCount shards.
type ErrTooManyOriginalShards struct {
	OriginalCount int
}

func (e ErrTooManyOriginalShards) Error() string {
	return fmt.Sprintf("gf16rs: too many original shards, already have %d", e.OriginalCount)
}

// ErrNotEnoughShards is returned by Decode when fewer than OriginalCount
// shards (original plus recovery) were supplied in total.
type ErrNotEnoughShards struct {
	OriginalCount    int
	OriginalReceived int
	RecoveryReceived int
}

func (e ErrNotEnoughShards) Error() string {
	return fmt.Sprintf(
		"gf16rs: not enough shards to decode: need %d, got %d original + %d recovery",
		e.OriginalCount, e.OriginalReceived, e.RecoveryReceived,
	)
}

// ErrDifferentShardSize is returned when a shard doesn't match the byte
// length the Encoder or Decoder was constructed with.
type ErrDifferentShardSize struct {
	Want int
	Got  int
}

func (e ErrDifferentShardSize) Error() string {
	return fmt.Sprintf("gf16rs: inconsistent shard size: want %d bytes, got %d", e.Want, e.Got)
}

// ErrInvalidOriginalShardIndex is returned when an original shard index is
// out of [0, OriginalCount).
type ErrInvalidOriginalShardIndex struct {
	OriginalCount int
	Index         int
}

func (e ErrInvalidOriginalShardIndex) Error() string {
	return fmt.Sprintf("gf16rs: original shard index %d out of range [0,%d)", e.Index, e.OriginalCount)
}

// ErrInvalidRecoveryShardIndex is returned when a recovery shard index is
// out of [0, RecoveryCount).
type ErrInvalidRecoveryShardIndex struct {
	RecoveryCount int
	Index         int
}

func (e ErrInvalidRecoveryShardIndex) Error() string {
	return fmt.Sprintf("gf16rs: recovery shard index %d out of range [0,%d)", e.Index, e.RecoveryCount)
}

// ErrDuplicateOriginalShardIndex is returned when AddOriginalShard sees the
// same index twice.
type ErrDuplicateOriginalShardIndex struct {
	Index int
}

func (e ErrDuplicateOriginalShardIndex) Error() string {
	return fmt.Sprintf("gf16rs: original shard index %d added twice", e.Index)
}

// ErrDuplicateRecoveryShardIndex is returned when AddRecoveryShard sees the
// same index twice.
type ErrDuplicateRecoveryShardIndex struct {
	Index int
}

func (e ErrDuplicateRecoveryShardIndex) Error() string {
	return fmt.Sprintf("gf16rs: recovery shard index %d added twice", e.Index)
}
