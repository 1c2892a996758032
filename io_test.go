package pq

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferSinkSourceRoundTrip(t *testing.T) {
	sink := NewBufferSink()
	n, err := sink.WriteBinary([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, sink.ShutDown())

	source := NewBufferSource(sink.Bytes())
	out := make([]byte, 5)
	n, err = source.ReadBinary(out)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(out))
	require.NoError(t, source.ShutDown())
}

func TestFileSinkSourceRoundTrip(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "pq-io-test")
	require.NoError(t, err)

	sink := NewFileSink(f)
	_, err = sink.WriteBinary([]byte("pq-data"))
	require.NoError(t, err)
	require.NoError(t, sink.ShutDown())

	rf, err := os.Open(f.Name())
	require.NoError(t, err)
	source := NewFileSource(rf)
	out := make([]byte, len("pq-data"))
	_, err = source.ReadBinary(out)
	require.NoError(t, err)
	require.Equal(t, "pq-data", string(out))
	require.NoError(t, source.ShutDown())
}

func TestBufferSourceShortReadSurfacesError(t *testing.T) {
	source := NewBufferSource([]byte{1, 2})
	out := make([]byte, 5)
	_, err := source.ReadBinary(out)
	require.Error(t, err)
}
