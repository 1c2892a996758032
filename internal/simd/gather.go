package simd

// GatherSumPair sums M dense Ks*Ks table lookups indexed by a pair of byte
// codes: Σᵢ table[i*Ks*Ks + x[i]*Ks + y[i]]. table is a flat [M][Ks][Ks]
// row-major buffer (an L2Table or CosTable); x and y must have equal length.
//
// Dispatches to the batch-of-eight path when the host ISA supports wide
// gather, else to the scalar path. Both accumulate into a single running
// total in strictly increasing subspace order, so they are bit-identical.
func GatherSumPair(table []float32, ks int, x, y []byte) float32 {
	if activeISA == Vectorized {
		return gatherSumPairBatch8(table, ks, x, y)
	}
	return gatherSumPairScalar(table, ks, x, y)
}

func gatherSumPairScalar(table []float32, ks int, x, y []byte) float32 {
	ks2 := ks * ks
	var sum float32
	for i := 0; i < len(x); i++ {
		sum += table[i*ks2+int(x[i])*ks+int(y[i])]
	}
	return sum
}

// gatherSumPairBatch8 computes the same sum, but resolves the gather index
// for eight subspaces up front per iteration (as a real 256-bit gather
// instruction would for eight lanes), then folds each lane into the running
// total in the same order the scalar path would. No reassociation occurs.
func gatherSumPairBatch8(table []float32, ks int, x, y []byte) float32 {
	ks2 := ks * ks
	m := len(x)
	var sum float32
	i := 0
	for ; i+8 <= m; i += 8 {
		idx0 := i*ks2 + int(x[i])*ks + int(y[i])
		idx1 := (i+1)*ks2 + int(x[i+1])*ks + int(y[i+1])
		idx2 := (i+2)*ks2 + int(x[i+2])*ks + int(y[i+2])
		idx3 := (i+3)*ks2 + int(x[i+3])*ks + int(y[i+3])
		idx4 := (i+4)*ks2 + int(x[i+4])*ks + int(y[i+4])
		idx5 := (i+5)*ks2 + int(x[i+5])*ks + int(y[i+5])
		idx6 := (i+6)*ks2 + int(x[i+6])*ks + int(y[i+6])
		idx7 := (i+7)*ks2 + int(x[i+7])*ks + int(y[i+7])

		sum += table[idx0]
		sum += table[idx1]
		sum += table[idx2]
		sum += table[idx3]
		sum += table[idx4]
		sum += table[idx5]
		sum += table[idx6]
		sum += table[idx7]
	}
	for ; i < m; i++ {
		sum += table[i*ks2+int(x[i])*ks+int(y[i])]
	}
	return sum
}

// GatherSumSingle sums M table-row lookups indexed by a single byte code:
// Σᵢ table[i*Ks + codes[i]]. table is a flat [M][Ks] row-major buffer (an
// ADC query buffer half).
func GatherSumSingle(table []float32, ks int, codes []byte) float32 {
	if activeISA == Vectorized {
		return gatherSumSingleBatch8(table, ks, codes)
	}
	return gatherSumSingleScalar(table, ks, codes)
}

func gatherSumSingleScalar(table []float32, ks int, codes []byte) float32 {
	var sum float32
	for i := 0; i < len(codes); i++ {
		sum += table[i*ks+int(codes[i])]
	}
	return sum
}

func gatherSumSingleBatch8(table []float32, ks int, codes []byte) float32 {
	m := len(codes)
	var sum float32
	i := 0
	for ; i+8 <= m; i += 8 {
		idx0 := i*ks + int(codes[i])
		idx1 := (i+1)*ks + int(codes[i+1])
		idx2 := (i+2)*ks + int(codes[i+2])
		idx3 := (i+3)*ks + int(codes[i+3])
		idx4 := (i+4)*ks + int(codes[i+4])
		idx5 := (i+5)*ks + int(codes[i+5])
		idx6 := (i+6)*ks + int(codes[i+6])
		idx7 := (i+7)*ks + int(codes[i+7])

		sum += table[idx0]
		sum += table[idx1]
		sum += table[idx2]
		sum += table[idx3]
		sum += table[idx4]
		sum += table[idx5]
		sum += table[idx6]
		sum += table[idx7]
	}
	for ; i < m; i++ {
		sum += table[i*ks+int(codes[i])]
	}
	return sum
}
