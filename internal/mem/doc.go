// Package mem provides 64-byte aligned allocation for SIMD operations
// (AVX-512 friendly), used to back the distance table's gather-friendly
// buffers.
package mem
