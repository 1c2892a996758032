package pq

import "unsafe"

// bytesToSlice reinterprets a []byte as a []T without copying, the same
// unsafe.Slice technique the lineage uses in internal/mem to hand back
// aligned typed views over a byte allocation. Panics if len(b) is not a
// multiple of sizeof(T); callers are expected to have already validated
// buffer sizes against QuantizeSize/ReconstructSize.
func bytesToSlice[T Scalar](b []byte) []T {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if len(b) == 0 {
		return nil
	}
	if len(b)%sz != 0 {
		panic("pq: byte buffer length is not a multiple of sizeof(T)")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/sz)
}

// sliceToBytes reinterprets a []T as a []byte without copying.
func sliceToBytes[T Scalar](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}

// EncodeVector reinterprets a typed vector or ADC query buffer as the raw
// bytes the Quantizer interface's byte-oriented methods expect. The
// returned slice aliases v; callers must not mutate v while the bytes are
// in use as a QuantizeVector/L2Distance/CosineDistance argument.
func EncodeVector[T Scalar](v []T) []byte { return sliceToBytes(v) }

// DecodeVector reinterprets raw bytes (as produced by ReconstructVector,
// or read back from a Sink/Source) as a typed []T slice. The returned
// slice aliases b.
func DecodeVector[T Scalar](b []byte) []T { return bytesToSlice[T](b) }
