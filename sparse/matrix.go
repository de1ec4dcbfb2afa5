// SPDX-License-Identifier: MIT
// Package sparse - interoperability with gonum/mat.
//
// A CSR keeps its error-returning At; Mat exposes the same storage through
// the gonum mat.Matrix interface (panicking accessors, lazy transpose), so
// a CSR can be handed to any gonum routine without densifying it first.

package sparse

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix is a read-only mat.Matrix view over a CSR.
type Matrix struct {
	csr *CSR
}

// compile-time interface checks
var (
	_ mat.Matrix      = Matrix{}
	_ mat.NonZeroDoer = Matrix{}
)

// Mat returns m as a gonum mat.Matrix. The view shares storage with m.
func (m *CSR) Mat() Matrix { return Matrix{csr: m} }

// Dims implements mat.Matrix.
func (v Matrix) Dims() (int, int) { return v.csr.rows, v.csr.cols }

// At implements mat.Matrix. Like gonum it panics on an out-of-range index.
func (v Matrix) At(i, j int) float64 {
	x, err := v.csr.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T implements mat.Matrix with gonum's lazy transpose.
func (v Matrix) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// DoNonZero implements mat.NonZeroDoer.
func (v Matrix) DoNonZero(fn func(i, j int, x float64)) { v.csr.DoNonZero(fn) }

// DoNonZero calls fn for every stored value in row-major order.
func (m *CSR) DoNonZero(fn func(i, j int, v float64)) {
	var i, k int
	for i = 0; i < m.rows; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.indices[k], m.data[k])
		}
	}
}

// FromMatrix builds a CSR from any gonum matrix; zero cells are not stored.
// A NonZeroDoer is walked directly, anything else is scanned cell by cell.
//
// Errors: ErrNilMatrix for a nil a, ErrNaNInf for a non-finite cell.
func FromMatrix(a mat.Matrix) (*CSR, error) {
	if a == nil {
		return nil, sparseErrorf("FromMatrix", ErrNilMatrix)
	}
	r, c := a.Dims()
	var entries []Entry
	if nz, ok := a.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			entries = append(entries, Entry{Row: i, Col: j, Value: v})
		})
	} else {
		var i, j int
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v = a.At(i, j); v != 0 {
					entries = append(entries, Entry{Row: i, Col: j, Value: v})
				}
			}
		}
	}
	out, err := NewCSR(r, c, entries)
	if err != nil {
		return nil, sparseErrorf("FromMatrix", err)
	}

	return out, nil
}

// ToDense copies m into a new gonum dense matrix. An empty shape yields an
// empty (zero-value) *mat.Dense, since gonum rejects zero-length dimensions.
func (m *CSR) ToDense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	m.DoNonZero(d.Set)

	return d
}
