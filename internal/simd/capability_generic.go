//go:build !amd64 && !arm64

package simd

// No known wide-gather ISA on this architecture; stays Generic.
func init() {}
