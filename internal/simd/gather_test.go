package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcceleratedGatherMatchesScalarFallback(t *testing.T) {
	const ks = 17
	const m = 37 // deliberately not a multiple of 8, to exercise the remainder loop

	rng := rand.New(rand.NewSource(42))
	table := make([]float32, m*ks*ks)
	for i := range table {
		table[i] = rng.Float32()*10 - 5
	}
	x := make([]byte, m)
	y := make([]byte, m)
	for i := 0; i < m; i++ {
		x[i] = byte(rng.Intn(ks))
		y[i] = byte(rng.Intn(ks))
	}

	scalar := gatherSumPairScalar(table, ks, x, y)
	batch := gatherSumPairBatch8(table, ks, x, y)
	require.Equal(t, scalar, batch, "batch-of-8 and scalar gather must be bit-identical")

	// Also exercise the single-index ADC gather form.
	single := make([]float32, m*ks)
	for i := range single {
		single[i] = rng.Float32()*10 - 5
	}
	singleScalar := gatherSumSingleScalar(single, ks, y)
	singleBatch := gatherSumSingleBatch8(single, ks, y)
	require.Equal(t, singleScalar, singleBatch)
}

func TestGatherSumPairDispatch(t *testing.T) {
	const ks = 4
	const m = 3
	table := []float32{
		0, 1, 2, 3,
		1, 0, 4, 5,
		2, 4, 0, 6,
		3, 5, 6, 0,

		0, 1, 2, 3,
		1, 0, 4, 5,
		2, 4, 0, 6,
		3, 5, 6, 0,

		0, 1, 2, 3,
		1, 0, 4, 5,
		2, 4, 0, 6,
		3, 5, 6, 0,
	}
	x := []byte{0, 1, 2}
	y := []byte{0, 1, 2}
	require.Equal(t, float32(0), GatherSumPair(table, ks, x, y))

	y2 := []byte{1, 2, 3}
	require.Equal(t, float32(1+4+6), GatherSumPair(table, ks, x, y2))
}
