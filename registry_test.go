package pq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	cb := randomCodebookF32(t, rng, 3, 32, 4)
	source, err := NewF32Quantizer(cb)
	require.NoError(t, err)

	sink := NewBufferSink()
	require.NoError(t, source.SaveQuantizer(sink))

	var reg1, reg2 Registry
	reg1.active = source // seed registry 1 as if it had constructed this directly

	q2, err := reg2.Load(NewBufferSource(sink.Bytes()), TypePQ, ScalarF32)
	require.NoError(t, err)

	active, ok := reg2.Active()
	require.True(t, ok)
	assert.Equal(t, q2, active)

	d := cb.D()
	vec := make([]float32, d)
	for i := range vec {
		vec[i] = rng.Float32()*2 - 1
	}
	c1 := make([]byte, source.QuantizeSize())
	c2 := make([]byte, q2.QuantizeSize())
	require.NoError(t, source.QuantizeVector(EncodeVector(vec), c1))
	require.NoError(t, q2.QuantizeVector(EncodeVector(vec), c2))
	assert.Equal(t, c1, c2)

	reg2.Clear()
	_, ok = reg2.Active()
	assert.False(t, ok)
}

func TestRegistryLoadUnknownScalarType(t *testing.T) {
	var reg Registry
	_, err := reg.Load(NewBufferSource(nil), TypePQ, ScalarType(99))
	require.Error(t, err)
}

func TestRegistryLoadUnknownQuantizerType(t *testing.T) {
	var reg Registry
	_, err := reg.Load(NewBufferSource(nil), QuantizerType(5), ScalarF32)
	require.Error(t, err)
}
