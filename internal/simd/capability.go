// Package simd implements the accelerated symmetric-L2 gather path over a
// dense distance table, and the ISA capability check that selects it.
//
// No hand-written assembly ships in this package: the retrieval lineage's
// own assembly-backed kernels reference external symbols with no matching
// .s files, so the "vectorized" path here is pure Go, structured the way a
// real 256-bit gather kernel would be (batches of eight subspaces, a single
// index computation per batch) but accumulating in the same left-to-right
// order as the scalar fallback. The two paths are therefore bit-identical
// by construction, not merely by observed behavior on this test corpus.
package simd

// ISA identifies the gather strategy selected at init time.
type ISA uint8

const (
	// Generic is the portable scalar fallback.
	Generic ISA = iota
	// Vectorized is the batch-of-eight gather path.
	Vectorized
)

func (i ISA) String() string {
	switch i {
	case Vectorized:
		return "vectorized"
	default:
		return "generic"
	}
}

var activeISA = Generic

// ActiveISA reports which gather strategy this process selected at init.
func ActiveISA() ISA { return activeISA }
