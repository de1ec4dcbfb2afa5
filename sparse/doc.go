// SPDX-License-Identifier: MIT

// Package sparse provides an immutable compressed-row (CSR) float64 matrix
// and the handful of kernels needed by power-iteration centrality methods.
//
// The package provides:
//
//   - Construction from coordinate triplets (NewCSR) or dense rows (FromDense).
//     Duplicate coordinates are summed; explicit zeros are dropped.
//   - Reductions: RowSums.
//   - Scaling: ScaleRows computes diag(s)·A without materializing the diagonal.
//   - Products: VecMul (x·A), MulVec (A·x), Mul (A·B), TransposeMul (AᵀA).
//   - Structure: Transpose, Clone, Dense export for tests and diagnostics.
//   - gonum interop: Mat (a mat.Matrix view), FromMatrix, ToDense.
//     Row reductions and scaling run on gonum/floats kernels.
//
// Storage layout:
//
//	indptr  [rows+1]  row i occupies data[indptr[i]:indptr[i+1]]
//	indices [nnz]     column of each stored value, strictly increasing per row
//	data    [nnz]     non-zero values
//
// Determinism:
//
//	Every kernel walks rows in ascending order and, within a row, columns in
//	ascending order. Identical inputs therefore produce bit-identical outputs.
//
// Errors:
//
//	ErrBadShape          - negative dimensions requested.
//	ErrOutOfRange        - row/column index outside the matrix.
//	ErrDimensionMismatch - operand lengths or shapes are incompatible.
//	ErrNaNInf            - NaN or ±Inf supplied as a stored value.
//	ErrNilMatrix         - nil *CSR used as receiver or operand.
//
// A CSR is never mutated after construction, so it can be shared freely
// between goroutines.
package sparse
