package pq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/productquant/pq/internal/conv"
	"github.com/productquant/pq/internal/kernel"
	"github.com/productquant/pq/internal/simd"
)

// headerSize is the fixed 12-byte header preceding the codebook buffer in
// the serialized format: M, Ks, Dsub as little-endian int32.
const headerSize = 12

// Quantizer is the polymorphic capability set a surrounding ANN index (or
// a Registry, see registry.go) holds without knowing the concrete scalar
// type T a quantizer was built over. Every method is byte-oriented at this
// boundary: a caller-supplied vec/out/code is the raw bytes of a []T slice
// (see EncodeVector/DecodeVector for the typed<->byte conversion), which
// keeps the interface the same shape whether T is float32, int8, uint8, or
// Half.
//
// A Ready quantizer is safe for concurrent calls to every method here
// except SetEnableADC and LoadQuantizer, which require exclusive access;
// the package performs no internal locking for them.
type Quantizer interface {
	// QuantizeVector encodes vec (D scalars of the quantizer's T, as raw
	// bytes) into out. In symmetric mode (ADC disabled) out must have
	// length QuantizeSize() == M and receives one centroid index per
	// subspace. In ADC mode out is instead filled as an ADC query buffer.
	QuantizeVector(vec, out []byte) error

	// ReconstructVector decodes a length-M byte code back into out, a
	// caller-owned buffer of ReconstructSize() bytes (D scalars of T).
	ReconstructVector(code, out []byte) error

	// L2Distance computes squared L2 distance. In symmetric mode both x
	// and y are byte codes; in ADC mode x is an ADC query buffer and y is
	// a byte code.
	L2Distance(x, y []byte) (float32, error)

	// CosineDistance computes the cosine-derived distance, under the same
	// symmetric/ADC argument convention as L2Distance.
	CosineDistance(x, y []byte) (float32, error)

	// QuantizeSize returns the required length of QuantizeVector's out
	// parameter for the current ADC mode.
	QuantizeSize() int

	// ReconstructSize returns the required length of ReconstructVector's
	// out parameter.
	ReconstructSize() int

	// BufferSize returns the serialized size SaveQuantizer will write.
	BufferSize() int

	// SaveQuantizer writes the header and codebook buffer to sink.
	SaveQuantizer(sink Sink) error

	// LoadQuantizer reads a header and codebook buffer from source and
	// rebuilds the distance tables. Requires the quantizer not already be
	// Ready.
	LoadQuantizer(source Source) error

	// GetEnableADC reports the current ADC toggle.
	GetEnableADC() bool

	// SetEnableADC sets the ADC toggle. Requires exclusive access.
	SetEnableADC(enabled bool)

	// ScalarType reports the fixed scalar element type this quantizer was
	// constructed with.
	ScalarType() ScalarType

	// CompressionRatio returns the ratio of raw vector size to compressed
	// code size (sizeof(T)*D / M), a convenience accounting helper.
	CompressionRatio() float64
}

// quantizer is the generic facade implementation. The public surface is
// the Quantizer interface; typed constructors return that interface
// directly so callers never need to name quantizer[T].
type quantizer[T Scalar] struct {
	scalar ScalarType
	logger *Logger

	ready     atomic.Bool
	enableADC atomic.Bool

	cb    *Codebook[T]
	table *DistanceTable
}

// NewF32Quantizer constructs a Ready quantizer over a float32 codebook.
func NewF32Quantizer(cb *Codebook[float32], opts ...Option) (Quantizer, error) {
	return newQuantizer(cb, ScalarF32, opts...)
}

// NewI8Quantizer constructs a Ready quantizer over an int8 codebook.
func NewI8Quantizer(cb *Codebook[int8], opts ...Option) (Quantizer, error) {
	return newQuantizer(cb, ScalarI8, opts...)
}

// NewU8Quantizer constructs a Ready quantizer over a uint8 codebook.
func NewU8Quantizer(cb *Codebook[uint8], opts ...Option) (Quantizer, error) {
	return newQuantizer(cb, ScalarU8, opts...)
}

// NewF16Quantizer constructs a Ready quantizer over a Half codebook.
func NewF16Quantizer(cb *Codebook[Half], opts ...Option) (Quantizer, error) {
	return newQuantizer(cb, ScalarF16, opts...)
}

func newQuantizer[T Scalar](cb *Codebook[T], scalar ScalarType, opts ...Option) (Quantizer, error) {
	o := applyOptions(opts)
	q := &quantizer[T]{scalar: scalar, logger: o.logger, cb: cb}
	q.table = buildDistanceTable(cb)
	q.enableADC.Store(o.initialADC)
	q.ready.Store(true)
	q.logger.Debug("pq: quantizer constructed",
		"m", cb.M(), "ks", cb.Ks(), "dsub", cb.Dsub(), "scalar", scalar.String())
	return q, nil
}

// newEmptyQuantizer constructs an Empty quantizer (no codebook yet) to be
// filled via LoadQuantizer. Used by Registry.Load, which must
// select the scalar variant before reading anything.
func newEmptyQuantizer[T Scalar](scalar ScalarType, opts ...Option) Quantizer {
	o := applyOptions(opts)
	q := &quantizer[T]{scalar: scalar, logger: o.logger}
	q.enableADC.Store(o.initialADC)
	return q
}

func (q *quantizer[T]) ScalarType() ScalarType { return q.scalar }

func (q *quantizer[T]) GetEnableADC() bool { return q.enableADC.Load() }

func (q *quantizer[T]) SetEnableADC(enabled bool) { q.enableADC.Store(enabled) }

func (q *quantizer[T]) QuantizeSize() int {
	if !q.ready.Load() {
		return 0
	}
	if q.enableADC.Load() {
		return 2 * q.cb.M() * q.cb.Ks() * 4
	}
	return q.cb.M()
}

func (q *quantizer[T]) ReconstructSize() int {
	if !q.ready.Load() {
		return 0
	}
	return q.cb.M() * q.cb.Dsub() * sizeOfScalar(q.scalar)
}

func (q *quantizer[T]) BufferSize() int {
	if !q.ready.Load() {
		return 0
	}
	return headerSize + q.cb.M()*q.cb.Ks()*q.cb.Dsub()*sizeOfScalar(q.scalar)
}

func (q *quantizer[T]) CompressionRatio() float64 {
	if !q.ready.Load() {
		return 0
	}
	raw := float64(q.cb.D() * sizeOfScalar(q.scalar))
	compressed := float64(q.cb.M())
	if compressed == 0 {
		return 0
	}
	return raw / compressed
}

func (q *quantizer[T]) QuantizeVector(vec, out []byte) error {
	if !q.ready.Load() {
		return &ErrNotInitialized{Op: "QuantizeVector"}
	}
	typedVec := bytesToSlice[T](vec)
	if len(typedVec) != q.cb.D() {
		return fmt.Errorf("pq: QuantizeVector: vector dimension mismatch: expected %d, got %d", q.cb.D(), len(typedVec))
	}
	if q.enableADC.Load() {
		return q.quantizeVectorADC(typedVec, out)
	}
	return q.quantizeVectorSymmetric(typedVec, out)
}

func (q *quantizer[T]) quantizeVectorSymmetric(vec []T, out []byte) error {
	m, ks, dsub := q.cb.M(), q.cb.Ks(), q.cb.Dsub()
	if len(out) != m {
		return fmt.Errorf("pq: QuantizeVector: output buffer size mismatch: expected %d, got %d", m, len(out))
	}
	if ks < 1 {
		return &ErrEmptyCodebook{}
	}
	for i := 0; i < m; i++ {
		sub := vec[i*dsub : (i+1)*dsub]
		best := 0
		bestDist := float32(math.Inf(1))
		for j := 0; j < ks; j++ {
			d := kernel.L2(sub, q.cb.Centroid(i, j))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		out[i] = byte(best)
	}
	return nil
}

func (q *quantizer[T]) quantizeVectorADC(vec []T, out []byte) error {
	m, ks, dsub := q.cb.M(), q.cb.Ks(), q.cb.Dsub()
	expected := 2 * m * ks * 4
	if len(out) != expected {
		return fmt.Errorf("pq: QuantizeVector: ADC buffer size mismatch: expected %d, got %d", expected, len(out))
	}
	buf := bytesToSlice[float32](out)
	for i := 0; i < m; i++ {
		sub := vec[i*dsub : (i+1)*dsub]
		for j := 0; j < ks; j++ {
			c := q.cb.Centroid(i, j)
			buf[i*ks+j] = kernel.L2(sub, c)
			buf[m*ks+i*ks+j] = kernel.Cosine(sub, c)
		}
	}
	return nil
}

func (q *quantizer[T]) ReconstructVector(code, out []byte) error {
	if !q.ready.Load() {
		return &ErrNotInitialized{Op: "ReconstructVector"}
	}
	m, dsub, ks := q.cb.M(), q.cb.Dsub(), q.cb.Ks()
	if len(code) != m {
		return fmt.Errorf("pq: ReconstructVector: code length mismatch: expected %d, got %d", m, len(code))
	}
	typedOut := bytesToSlice[T](out)
	if len(typedOut) != q.cb.D() {
		return fmt.Errorf("pq: ReconstructVector: output buffer size mismatch: expected %d, got %d", q.cb.D(), len(typedOut))
	}
	for i := 0; i < m; i++ {
		j := int(code[i])
		if j >= ks {
			return fmt.Errorf("pq: ReconstructVector: code[%d]=%d out of range [0,%d)", i, j, ks)
		}
		copy(typedOut[i*dsub:(i+1)*dsub], q.cb.Centroid(i, j))
	}
	return nil
}

func (q *quantizer[T]) L2Distance(x, y []byte) (float32, error) {
	if !q.ready.Load() {
		return 0, &ErrNotInitialized{Op: "L2Distance"}
	}
	if q.enableADC.Load() {
		return q.l2DistanceAsymmetric(x, y)
	}
	return q.l2DistanceSymmetric(x, y)
}

func (q *quantizer[T]) l2DistanceSymmetric(x, y []byte) (float32, error) {
	m := q.cb.M()
	if len(x) != m || len(y) != m {
		return 0, fmt.Errorf("pq: L2Distance: code length mismatch: expected %d, got (%d,%d)", m, len(x), len(y))
	}
	return simd.GatherSumPair(q.table.L2Table(), q.cb.Ks(), x, y), nil
}

func (q *quantizer[T]) l2DistanceAsymmetric(x, y []byte) (float32, error) {
	m, ks := q.cb.M(), q.cb.Ks()
	expectedX := 2 * m * ks * 4
	if len(x) != expectedX {
		return 0, fmt.Errorf("pq: L2Distance: ADC buffer size mismatch: expected %d, got %d", expectedX, len(x))
	}
	if len(y) != m {
		return 0, fmt.Errorf("pq: L2Distance: code length mismatch: expected %d, got %d", m, len(y))
	}
	buf := bytesToSlice[float32](x)
	l2Half := buf[:m*ks]
	return simd.GatherSumSingle(l2Half, ks, y), nil
}

func (q *quantizer[T]) CosineDistance(x, y []byte) (float32, error) {
	if !q.ready.Load() {
		return 0, &ErrNotInitialized{Op: "CosineDistance"}
	}
	if q.enableADC.Load() {
		return q.cosineDistanceAsymmetric(x, y)
	}
	return q.cosineDistanceSymmetric(x, y)
}

func (q *quantizer[T]) cosineDistanceSymmetric(x, y []byte) (float32, error) {
	m := q.cb.M()
	if len(x) != m || len(y) != m {
		return 0, fmt.Errorf("pq: CosineDistance: code length mismatch: expected %d, got (%d,%d)", m, len(x), len(y))
	}
	s := simd.GatherSumPair(q.table.CosTable(), q.cb.Ks(), x, y)
	// Σᵢ DistanceFromSimilarity(sᵢ) = M - s: the sum of per-subspace cosine
	// distances, so identical codes are at distance 0, as on the ADC path.
	return float32(m) - s, nil
}

// cosineDistanceAsymmetric sums the ADC buffer's cosine half and returns
// it as-is. The cosine half of the ADC buffer already holds distances
// (quantizeVectorADC writes kernel.Cosine, a distance), so no further
// DistanceFromSimilarity inversion is applied here, unlike the symmetric
// path which sums similarities and inverts once at the end.
func (q *quantizer[T]) cosineDistanceAsymmetric(x, y []byte) (float32, error) {
	m, ks := q.cb.M(), q.cb.Ks()
	expectedX := 2 * m * ks * 4
	if len(x) != expectedX {
		return 0, fmt.Errorf("pq: CosineDistance: ADC buffer size mismatch: expected %d, got %d", expectedX, len(x))
	}
	if len(y) != m {
		return 0, fmt.Errorf("pq: CosineDistance: code length mismatch: expected %d, got %d", m, len(y))
	}
	buf := bytesToSlice[float32](x)
	cosHalf := buf[m*ks:]
	return simd.GatherSumSingle(cosHalf, ks, y), nil
}

func (q *quantizer[T]) SaveQuantizer(sink Sink) error {
	if !q.ready.Load() {
		return &ErrNotInitialized{Op: "SaveQuantizer"}
	}
	mVal, err := conv.IntToUint32(q.cb.M())
	if err != nil {
		return fmt.Errorf("pq: SaveQuantizer: M: %w", err)
	}
	ksVal, err := conv.IntToUint32(q.cb.Ks())
	if err != nil {
		return fmt.Errorf("pq: SaveQuantizer: Ks: %w", err)
	}
	dsubVal, err := conv.IntToUint32(q.cb.Dsub())
	if err != nil {
		return fmt.Errorf("pq: SaveQuantizer: Dsub: %w", err)
	}

	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], mVal)
	binary.LittleEndian.PutUint32(header[4:8], ksVal)
	binary.LittleEndian.PutUint32(header[8:12], dsubVal)

	n, err := sink.WriteBinary(header)
	if err != nil || n != len(header) {
		return &ErrIoFailed{Op: "SaveQuantizer: header", cause: err}
	}

	bufBytes := sliceToBytes(q.cb.Buffer())
	n, err = sink.WriteBinary(bufBytes)
	if err != nil || n != len(bufBytes) {
		return &ErrIoFailed{Op: "SaveQuantizer: buffer", cause: err}
	}
	return nil
}

func (q *quantizer[T]) LoadQuantizer(source Source) error {
	if q.ready.Load() {
		q.logger.Warn("pq: LoadQuantizer rejected: quantizer already ready")
		return errors.New("pq: LoadQuantizer: quantizer is already ready")
	}

	header := make([]byte, headerSize)
	n, err := source.ReadBinary(header)
	if err != nil || n != len(header) {
		return &ErrIoFailed{Op: "LoadQuantizer: header", cause: err}
	}

	m := int(int32(binary.LittleEndian.Uint32(header[0:4])))
	ks := int(int32(binary.LittleEndian.Uint32(header[4:8])))
	dsub := int(int32(binary.LittleEndian.Uint32(header[8:12])))
	if m <= 0 || ks <= 0 || dsub <= 0 || ks > 256 {
		return &ErrMalformedHeader{Reason: fmt.Sprintf("M=%d Ks=%d Dsub=%d violates shape invariants", m, ks, dsub)}
	}

	elemSize := sizeOfScalar(q.scalar)
	bufBytes := make([]byte, m*ks*dsub*elemSize)
	n, err = source.ReadBinary(bufBytes)
	if err != nil || n != len(bufBytes) {
		return &ErrIoFailed{Op: "LoadQuantizer: buffer", cause: err}
	}

	buf := bytesToSlice[T](bufBytes)
	cb, err := NewCodebook(m, ks, dsub, buf)
	if err != nil {
		return &ErrMalformedHeader{Reason: err.Error()}
	}

	q.cb = cb
	q.table = buildDistanceTable(cb)
	q.ready.Store(true)
	q.logger.Debug("pq: quantizer loaded", "m", m, "ks", ks, "dsub", dsub, "scalar", q.scalar.String())
	return nil
}
