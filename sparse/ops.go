// SPDX-License-Identifier: MIT
// Package sparse - reductions, scaling and products.
//
// Determinism & Policy:
//   - Rows are visited in ascending order; within a row, columns ascend.
//   - Results never alias operands.
//   - Products whose value is exactly 0 are not stored.

package sparse

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// RowSums returns r where r[i] = Σ_j A[i,j].
// Complexity: O(rows + nnz).
func (m *CSR) RowSums() []float64 {
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = floats.Sum(m.data[m.indptr[i]:m.indptr[i+1]])
	}

	return out
}

// ScaleRows returns diag(s)·A, i.e. row i multiplied by s[i].
// Rows scaled by 0 become empty. A is not modified.
//
// Errors:
//   - ErrDimensionMismatch if len(s) != Rows.
//   - ErrNaNInf if s contains a non-finite factor for a non-empty row.
//
// Complexity: O(rows + nnz).
func (m *CSR) ScaleRows(s []float64) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf("ScaleRows", ErrNilMatrix)
	}
	if len(s) != m.rows {
		return nil, sparseErrorf("ScaleRows", ErrDimensionMismatch)
	}

	out := &CSR{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  make([]int, m.rows+1),
		indices: make([]int, 0, len(m.indices)),
		data:    make([]float64, 0, len(m.data)),
	}
	scratch := make([]float64, 0, maxRowLen(m))
	var i, lo, hi, k int
	for i = 0; i < m.rows; i++ {
		lo, hi = m.indptr[i], m.indptr[i+1]
		if lo < hi && isNonFinite(s[i]) {
			return nil, sparseErrorf("ScaleRows", ErrNaNInf)
		}
		scratch = floats.ScaleTo(scratch[:hi-lo], s[i], m.data[lo:hi])
		for k = range scratch {
			if scratch[k] == 0 {
				continue
			}
			out.indices = append(out.indices, m.indices[lo+k])
			out.data = append(out.data, scratch[k])
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// VecMul returns the row-vector product y = x·A (len(y) == Cols).
//
// Errors: ErrDimensionMismatch if len(x) != Rows.
// Complexity: O(rows + cols + nnz).
func (m *CSR) VecMul(x []float64) ([]float64, error) {
	if m == nil {
		return nil, sparseErrorf("VecMul", ErrNilMatrix)
	}
	if len(x) != m.rows {
		return nil, sparseErrorf("VecMul", ErrDimensionMismatch)
	}

	y := make([]float64, m.cols)
	var i, k int
	for i = 0; i < m.rows; i++ {
		if x[i] == 0 {
			continue
		}
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			y[m.indices[k]] += x[i] * m.data[k]
		}
	}

	return y, nil
}

// MulVec returns the column-vector product y = A·x (len(y) == Rows).
//
// Errors: ErrDimensionMismatch if len(x) != Cols.
// Complexity: O(rows + nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, sparseErrorf("MulVec", ErrNilMatrix)
	}
	if len(x) != m.cols {
		return nil, sparseErrorf("MulVec", ErrDimensionMismatch)
	}

	y := make([]float64, m.rows)
	var i, k int
	var acc float64
	for i = 0; i < m.rows; i++ {
		acc = 0
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.data[k] * x[m.indices[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns Aᵀ (Cols×Rows).
//
// Implementation: counting sort of stored values by column. Because source
// rows are scanned in ascending order, each output row is already sorted.
// Complexity: O(rows + cols + nnz).
func (m *CSR) Transpose() *CSR {
	out := &CSR{
		rows:    m.cols,
		cols:    m.rows,
		indptr:  make([]int, m.cols+1),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}

	var i, k, j int
	for _, j = range m.indices {
		out.indptr[j+1]++
	}
	for j = 0; j < m.cols; j++ {
		out.indptr[j+1] += out.indptr[j]
	}

	next := make([]int, m.cols)
	copy(next, out.indptr[:m.cols])
	var dst int
	for i = 0; i < m.rows; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			j = m.indices[k]
			dst = next[j]
			out.indices[dst] = i
			out.data[dst] = m.data[k]
			next[j]++
		}
	}

	return out
}

// Mul returns the sparse product A·B.
//
// Implementation (row-by-row Gustavson):
//   - For each row i of A, scatter a[i,k]·B[k,:] into a dense accumulator.
//   - Collect the touched columns, sort them, emit non-zero sums.
//
// Errors:
//   - ErrNilMatrix if b is nil.
//   - ErrDimensionMismatch if A.Cols != B.Rows.
//
// Complexity: O(Σ_i Σ_{k∈row i} nnz(B[k,:]) + touched·log touched) time, O(B.Cols) scratch.
func (m *CSR) Mul(b *CSR) (*CSR, error) {
	if m == nil || b == nil {
		return nil, sparseErrorf("Mul", ErrNilMatrix)
	}
	if m.cols != b.rows {
		return nil, sparseErrorf("Mul", ErrDimensionMismatch)
	}

	out := &CSR{
		rows:   m.rows,
		cols:   b.cols,
		indptr: make([]int, m.rows+1),
	}
	acc := make([]float64, b.cols)
	seen := make([]bool, b.cols)
	touched := make([]int, 0, b.cols)

	var i, ka, kb, r, j int
	var a float64
	for i = 0; i < m.rows; i++ {
		touched = touched[:0]
		for ka = m.indptr[i]; ka < m.indptr[i+1]; ka++ {
			r = m.indices[ka]
			a = m.data[ka]
			for kb = b.indptr[r]; kb < b.indptr[r+1]; kb++ {
				j = b.indices[kb]
				if !seen[j] {
					seen[j] = true
					touched = append(touched, j)
				}
				acc[j] += a * b.data[kb]
			}
		}
		sort.Ints(touched)
		for _, j = range touched {
			if acc[j] != 0 {
				out.indices = append(out.indices, j)
				out.data = append(out.data, acc[j])
			}
			acc[j] = 0
			seen[j] = false
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// maxRowLen returns the largest number of stored values in any row.
func maxRowLen(m *CSR) int {
	var longest int
	for i := 0; i < m.rows; i++ {
		longest = max(longest, m.indptr[i+1]-m.indptr[i])
	}

	return longest
}

// TransposeMul returns AᵀA (Cols×Cols), the Gram matrix of A's columns.
// The result is symmetric and non-negative whenever A is non-negative.
func (m *CSR) TransposeMul() *CSR {
	// Shapes always agree: Aᵀ is Cols×Rows and A is Rows×Cols.
	out, _ := m.Transpose().Mul(m)

	return out
}
