package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestL2(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{1, 1}
	assert.Equal(t, float32(2.0), L2(a, b))
	assert.Equal(t, float32(0.0), L2(a, a))
}

func TestCosineZeroNorm(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{1, 2, 3}
	assert.Equal(t, float32(1.0), Cosine(a, b))
}

func TestCosineIdentical(t *testing.T) {
	a := []float32{1, 2, 3}
	d := Cosine(a, a)
	assert.InDelta(t, 0.0, d, 1e-6)
}

func TestCosineInt8(t *testing.T) {
	a := []int8{1, 0}
	b := []int8{0, 1}
	d := Cosine(a, b)
	assert.InDelta(t, 1.0, d, 1e-6)
}

func TestSimilarityDistanceRoundTrip(t *testing.T) {
	d := float32(0.3)
	assert.InDelta(t, float64(d), float64(DistanceFromSimilarity(SimilarityFromDistance(d))), 1e-6)
}
