package pq

import (
	"bytes"
	"io"
	"os"
)

// Sink is the write-side serialization collaborator for SaveQuantizer. Its
// shape follows io.Writer's short-count convention; the facade is the
// layer that turns a short write into ErrIoFailed.
type Sink interface {
	WriteBinary(p []byte) (n int, err error)
	ShutDown() error
}

// Source is the read-side serialization collaborator for LoadQuantizer.
type Source interface {
	ReadBinary(p []byte) (n int, err error)
	ShutDown() error
}

// FileSink writes to a *os.File, grounded on the lineage's direct
// *os.File usage for segment I/O.
type FileSink struct {
	f *os.File
}

// NewFileSink wraps an already-open file for writing.
func NewFileSink(f *os.File) *FileSink { return &FileSink{f: f} }

func (s *FileSink) WriteBinary(p []byte) (int, error) { return s.f.Write(p) }

func (s *FileSink) ShutDown() error { return s.f.Close() }

// FileSource reads from a *os.File.
type FileSource struct {
	f *os.File
}

// NewFileSource wraps an already-open file for reading.
func NewFileSource(f *os.File) *FileSource { return &FileSource{f: f} }

func (s *FileSource) ReadBinary(p []byte) (int, error) { return io.ReadFull(s.f, p) }

func (s *FileSource) ShutDown() error { return s.f.Close() }

// BufferSink is an in-memory Sink, for round-trip tests and for embedding
// a serialized quantizer inside another format.
type BufferSink struct {
	buf *bytes.Buffer
}

// NewBufferSink returns a BufferSink backed by a fresh buffer.
func NewBufferSink() *BufferSink { return &BufferSink{buf: new(bytes.Buffer)} }

func (s *BufferSink) WriteBinary(p []byte) (int, error) { return s.buf.Write(p) }

func (s *BufferSink) ShutDown() error { return nil }

// Bytes returns the accumulated bytes written so far.
func (s *BufferSink) Bytes() []byte { return s.buf.Bytes() }

// BufferSource is an in-memory Source over a fixed byte slice.
type BufferSource struct {
	r *bytes.Reader
}

// NewBufferSource returns a BufferSource reading from b.
func NewBufferSource(b []byte) *BufferSource { return &BufferSource{r: bytes.NewReader(b)} }

func (s *BufferSource) ReadBinary(p []byte) (int, error) { return io.ReadFull(s.r, p) }

func (s *BufferSource) ShutDown() error { return nil }
