package pq

import "fmt"

// QuantizerType tags which quantizer algorithm is active. PQ is the only
// value defined by this module; a surrounding index may define further
// tags for other quantizer families it implements itself.
type QuantizerType uint8

// TypePQ is the only QuantizerType this module defines.
const TypePQ QuantizerType = 0

// Registry replaces a process-wide mutable global with an explicit
// container the caller constructs and threads through, matching the
// lineage's preference for explicit ownership (e.g. engine/'s *Engine)
// over hidden package-level singletons.
//
// A Registry holds at most one active Quantizer at a time, keyed by the
// (QuantizerType, ScalarType) pair it was loaded with.
type Registry struct {
	kind   QuantizerType
	scalar ScalarType
	active Quantizer
}

// Load constructs the typed variant named by (kind, scalar), calls
// LoadQuantizer on it with source, and stores the result as the active
// quantizer. On failure the registry's previous active quantizer (if any)
// is left untouched.
func (r *Registry) Load(source Source, kind QuantizerType, scalar ScalarType, opts ...Option) (Quantizer, error) {
	if kind != TypePQ {
		return nil, fmt.Errorf("pq: registry: unknown QuantizerType %d", kind)
	}

	q, err := newEmptyQuantizerForScalar(scalar, opts...)
	if err != nil {
		return nil, err
	}
	if err := q.LoadQuantizer(source); err != nil {
		return nil, err
	}

	r.kind = kind
	r.scalar = scalar
	r.active = q
	return q, nil
}

// Active returns the currently active quantizer, if any.
func (r *Registry) Active() (Quantizer, bool) {
	if r.active == nil {
		return nil, false
	}
	return r.active, true
}

// Clear tears down the registry's reference to the active quantizer. It
// does not call any teardown method on the quantizer itself; the caller
// owns that lifecycle.
func (r *Registry) Clear() {
	r.active = nil
	r.kind = TypePQ
	r.scalar = ScalarF32
}

func newEmptyQuantizerForScalar(scalar ScalarType, opts ...Option) (Quantizer, error) {
	switch scalar {
	case ScalarF32:
		return newEmptyQuantizer[float32](scalar, opts...), nil
	case ScalarI8:
		return newEmptyQuantizer[int8](scalar, opts...), nil
	case ScalarU8:
		return newEmptyQuantizer[uint8](scalar, opts...), nil
	case ScalarF16:
		return newEmptyQuantizer[Half](scalar, opts...), nil
	default:
		return nil, fmt.Errorf("pq: registry: unknown ScalarType %d", scalar)
	}
}
