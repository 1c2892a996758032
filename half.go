package pq

import "github.com/productquant/pq/internal/f16"

// Half is an IEEE-754 binary16 (float16) scalar. Arithmetic is performed in
// float32; Half exists purely as a compact storage format, matching how the
// lineage's internal/f16 package is documented.
type Half = f16.Bits

// HalfFromFloat32 converts f to its nearest binary16 representation,
// round-to-nearest-even.
func HalfFromFloat32(f float32) Half { return f16.FromFloat32(f) }

// HalfToFloat32 widens a binary16 value to float32.
func HalfToFloat32(h Half) float32 { return f16.ToFloat32(h) }

// EncodeHalf converts a slice of float32 to Half, writing into dst.
// dst must have length >= len(src).
func EncodeHalf(dst []Half, src []float32) { f16.Encode(dst, src) }

// DecodeHalf converts a slice of Half to float32, writing into dst.
// dst must have length >= len(src).
func DecodeHalf(dst []float32, src []Half) { f16.Decode(dst, src) }
