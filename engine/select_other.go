//go:build !amd64 && !arm64

package engine

// Select has no acceleration to offer on unrecognized architectures.
func Select() Engine {
	return NoSimd{}
}
