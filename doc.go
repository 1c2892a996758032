// Package pq implements Product Quantization (PQ) for approximate
// nearest-neighbor search over high-dimensional vectors.
//
// A vector of dimension D is split into M disjoint sub-vectors and each
// sub-vector is independently quantized against a per-subspace codebook of
// Ks centroids, producing an M-byte code. Pairwise distances between codes
// are then evaluated via precomputed per-subspace lookup tables instead of
// against the raw vectors, which is the source of PQ's speed advantage over
// exact search.
//
// # Quick start
//
//	cb, _ := pq.NewCodebook(m, ks, dsub, buf) // buf: caller-owned, M*Ks*Dsub float32s
//	q, _ := pq.NewF32Quantizer(cb)
//	code := make([]byte, q.QuantizeSize())
//	_ = q.QuantizeVector(pq.EncodeVector(vec), code)
//
//	d, _ := q.L2Distance(codeA, codeB) // symmetric: both are byte codes
//
// # Asymmetric distance computation (ADC)
//
//	q.SetEnableADC(true)
//	adcBuf := make([]byte, q.QuantizeSize()) // 2*M*Ks float32s, as raw bytes
//	_ = q.QuantizeVector(pq.EncodeVector(query), adcBuf) // fills the ADC table, no argmin taken
//	d, _ := q.L2Distance(adcBuf, code)                   // asymmetric: query precision vs. stored code
//
// # Scalar types
//
// Four scalar element types are supported: float32, int8, uint8, and
// pq.Half (IEEE-754 binary16). The type is fixed at construction through
// the typed constructor (NewF32Quantizer, NewI8Quantizer, NewU8Quantizer,
// NewF16Quantizer) and is preserved across Save/Load; the file format
// itself carries no type tag, so the caller (or a Registry, see
// registry.go) must select the matching constructor before LoadQuantizer.
//
// # Concurrency
//
// A Ready quantizer is safe for concurrent reads (QuantizeVector in
// symmetric mode, ReconstructVector, L2Distance, CosineDistance, size
// queries, SaveQuantizer) from any number of goroutines without external
// synchronization. SetEnableADC and LoadQuantizer require exclusive access;
// the package performs no internal locking for them, callers coordinate.
package pq
