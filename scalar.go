package pq

import "github.com/productquant/pq/internal/kernel"

// Scalar is the set of element types a Codebook or typed quantizer
// constructor may be built over: float32, int8, uint8, and Half.
type Scalar = kernel.Scalar

// ScalarType tags which concrete Scalar a serialized or registry-held
// quantizer was built over. The file format itself carries no such tag
// (it is out-of-band, see io.go and registry.go); ScalarType is how a
// caller or Registry records it alongside the bytes.
type ScalarType uint8

const (
	// ScalarF32 tags a quantizer over float32.
	ScalarF32 ScalarType = iota
	// ScalarI8 tags a quantizer over int8.
	ScalarI8
	// ScalarU8 tags a quantizer over uint8.
	ScalarU8
	// ScalarF16 tags a quantizer over Half.
	ScalarF16
)

func (s ScalarType) String() string {
	switch s {
	case ScalarF32:
		return "f32"
	case ScalarI8:
		return "i8"
	case ScalarU8:
		return "u8"
	case ScalarF16:
		return "f16"
	default:
		return "unknown"
	}
}

// sizeOfScalar returns sizeof(T) in bytes for the given tag.
func sizeOfScalar(s ScalarType) int {
	switch s {
	case ScalarF32:
		return 4
	case ScalarI8, ScalarU8:
		return 1
	case ScalarF16:
		return 2
	default:
		return 0
	}
}
