// SPDX-License-Identifier: MIT
// Package sparse - CSR type, constructors and read-only accessors.
//
// Policy:
//   - A CSR is immutable once returned; every operation allocates its result.
//   - Stored values are finite and non-zero; column indices ascend strictly per row.
//   - Accessors never panic on user input; they return sentinels instead.

package sparse

import (
	"math"
	"sort"
)

// Entry is a single coordinate triplet (Row, Col, Value) used to build a CSR.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// CSR is a rows×cols matrix in compressed sparse row form.
type CSR struct {
	rows, cols int
	indptr     []int     // len rows+1, indptr[0] == 0
	indices    []int     // column per stored value
	data       []float64 // stored non-zero values
}

// NewCSR builds a rows×cols CSR from coordinate triplets.
//
// Implementation:
//   - Stage 1: validate shape, indices and finiteness of every entry.
//   - Stage 2: stable-sort a copy of entries by (Row, Col).
//   - Stage 3: sum duplicates in input order, drop zero sums, emit rows.
//
// Behavior highlights:
//   - Duplicate coordinates are summed (parallel edges accumulate).
//   - The caller's slice is never reordered.
//   - 0×0 and empty-entry matrices are valid.
//
// Errors:
//   - ErrBadShape if rows<0 or cols<0.
//   - ErrOutOfRange if an entry lies outside [0,rows)×[0,cols).
//   - ErrNaNInf if an entry value is not finite.
//
// Complexity:
//   - Time O(nnz log nnz + rows), Space O(nnz + rows).
func NewCSR(rows, cols int, entries []Entry) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf("NewCSR", ErrBadShape)
	}

	var e Entry
	for _, e = range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf("NewCSR", ErrOutOfRange)
		}
		if isNonFinite(e.Value) {
			return nil, sparseErrorf("NewCSR", ErrNaNInf)
		}
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	// Stable keeps duplicate summation in caller order, so the result is reproducible.
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(sorted)),
		data:    make([]float64, 0, len(sorted)),
	}

	var k, next int
	var sum float64
	for k = 0; k < len(sorted); k = next {
		sum = sorted[k].Value
		for next = k + 1; next < len(sorted) && sorted[next].Row == sorted[k].Row && sorted[next].Col == sorted[k].Col; next++ {
			sum += sorted[next].Value
		}
		if sum == 0 {
			continue
		}
		m.indices = append(m.indices, sorted[k].Col)
		m.data = append(m.data, sum)
		m.indptr[sorted[k].Row+1]++
	}
	// Prefix-sum the per-row counts into offsets.
	var i int
	for i = 0; i < rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}

	return m, nil
}

// FromDense builds a CSR from row-major dense data. All rows must share one length.
// Zero cells are not stored. A nil or empty slice yields a 0×0 matrix.
func FromDense(rows [][]float64) (*CSR, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	entries := make([]Entry, 0, r)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, sparseErrorf("FromDense", ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if rows[i][j] != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Value: rows[i][j]})
			}
		}
	}

	return NewCSR(r, c, entries)
}

// Zeros returns an empty rows×cols matrix.
func Zeros(rows, cols int) (*CSR, error) {
	return NewCSR(rows, cols, nil)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*CSR, error) {
	if n < 0 {
		return nil, sparseErrorf("Identity", ErrBadShape)
	}
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{Row: i, Col: i, Value: 1}
	}

	return NewCSR(n, n, entries)
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored non-zero values.
func (m *CSR) NNZ() int { return len(m.data) }

// At returns the value at (i, j); absent cells read as 0.
// Complexity: O(log nnz(row i)).
func (m *CSR) At(i, j int) (float64, error) {
	if m == nil {
		return 0, sparseErrorf("At", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, sparseErrorf("At", ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], j)
	if k < hi && m.indices[k] == j {
		return m.data[k], nil
	}

	return 0, nil
}

// Row returns read-only views of the stored columns and values of row i.
// The returned slices alias internal storage and must not be modified.
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if m == nil {
		return nil, nil, sparseErrorf("Row", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, nil, sparseErrorf("Row", ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi:hi], m.data[lo:hi:hi], nil
}

// Dense exports the matrix as freshly allocated row-major slices.
// Intended for diagnostics and tests on small matrices: O(rows*cols) memory.
func (m *CSR) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	var i, k int
	for i = 0; i < m.rows; i++ {
		out[i] = make([]float64, m.cols)
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			out[i][m.indices[k]] = m.data[k]
		}
	}

	return out
}

// Clone returns an independent deep copy.
func (m *CSR) Clone() *CSR {
	return &CSR{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
		data:    append([]float64(nil), m.data...),
	}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
