package pq

import (
	"github.com/productquant/pq/internal/kernel"
	"github.com/productquant/pq/internal/mem"
)

// DistanceTable holds the dense precomputed inter-centroid distances for
// every subspace: L2Table[i,j,k] = squared L2 between centroid j and
// centroid k of subspace i, and CosTable[i,j,k] = cosine similarity
// between the same pair, with every diagonal entry (j == k) equal to 1.
// Both are dense Ks*Ks per subspace rather than
// triangular, trading roughly 2x memory for a constant gather stride on
// the hot path. Built eagerly at construction and after load; never
// mutated thereafter.
type DistanceTable struct {
	m, ks int
	l2    []float32
	cos   []float32
}

// buildDistanceTable populates L2Table and CosTable from cb. Construction
// is single-threaded by contract; concurrent construction is unsupported.
func buildDistanceTable[T Scalar](cb *Codebook[T]) *DistanceTable {
	m, ks := cb.M(), cb.Ks()
	// 64-byte alignment gives the accelerated gather path in internal/simd
	// a predictable cache-line-aligned base address for its batch-of-eight
	// reads, the same rationale the lineage documents in internal/mem.
	t := &DistanceTable{
		m:   m,
		ks:  ks,
		l2:  mem.AllocAlignedFloat32(m * ks * ks),
		cos: mem.AllocAlignedFloat32(m * ks * ks),
	}
	for i := 0; i < m; i++ {
		for j := 0; j < ks; j++ {
			cj := cb.Centroid(i, j)
			for k := 0; k < ks; k++ {
				ck := cb.Centroid(i, k)
				idx := t.idx(i, j, k)
				t.l2[idx] = kernel.L2(cj, ck)
				if j == k {
					// Self-similarity is 1 even for a zero-norm centroid,
					// for which kernel.Cosine reports a distance of 1.
					t.cos[idx] = 1
				} else {
					t.cos[idx] = kernel.SimilarityFromDistance(kernel.Cosine(cj, ck))
				}
			}
		}
	}
	return t
}

func (t *DistanceTable) idx(i, j, k int) int { return i*t.ks*t.ks + j*t.ks + k }

// L2 returns the squared L2 distance between centroid j and centroid k of
// subspace i.
func (t *DistanceTable) L2(i, j, k int) float32 { return t.l2[t.idx(i, j, k)] }

// Cos returns the cosine similarity between centroid j and centroid k of
// subspace i.
func (t *DistanceTable) Cos(i, j, k int) float32 { return t.cos[t.idx(i, j, k)] }

// L2Table exposes the flat [M][Ks][Ks] buffer for the accelerated gather
// path in internal/simd.
func (t *DistanceTable) L2Table() []float32 { return t.l2 }

// CosTable exposes the flat [M][Ks][Ks] buffer for the accelerated gather
// path in internal/simd.
func (t *DistanceTable) CosTable() []float32 { return t.cos }
