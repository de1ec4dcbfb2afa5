// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrank/sparse"
)

// mustCSR builds a CSR from dense rows and fails the test on error.
func mustCSR(t *testing.T, rows [][]float64) *sparse.CSR {
	t.Helper()
	m, err := sparse.FromDense(rows)
	require.NoError(t, err)

	return m
}

func TestNewCSR_SumsDuplicatesAndDropsZeros(t *testing.T) {
	t.Parallel()

	m, err := sparse.NewCSR(2, 3, []sparse.Entry{
		{Row: 1, Col: 2, Value: 4},
		{Row: 0, Col: 1, Value: 2},
		{Row: 0, Col: 1, Value: 3},
		{Row: 1, Col: 0, Value: 1},
		{Row: 1, Col: 0, Value: -1}, // cancels to zero
		{Row: 0, Col: 0, Value: 0},
	})
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, [][]float64{{0, 5, 0}, {0, 0, 4}}, m.Dense())
}

func TestNewCSR_Validation(t *testing.T) {
	t.Parallel()

	_, err := sparse.NewCSR(-1, 2, nil)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.NewCSR(2, 2, []sparse.Entry{{Row: 2, Col: 0, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewCSR(2, 2, []sparse.Entry{{Row: 0, Col: -1, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewCSR(2, 2, []sparse.Entry{{Row: 0, Col: 0, Value: math.NaN()}})
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	_, err = sparse.NewCSR(2, 2, []sparse.Entry{{Row: 0, Col: 0, Value: math.Inf(1)}})
	require.ErrorIs(t, err, sparse.ErrNaNInf)
}

func TestNewCSR_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	in := []sparse.Entry{{Row: 1, Col: 1, Value: 1}, {Row: 0, Col: 0, Value: 2}}
	_, err := sparse.NewCSR(2, 2, in)
	require.NoError(t, err)
	require.Equal(t, 1, in[0].Row)
	require.Equal(t, 0, in[1].Row)
}

func TestFromDense_RaggedAndEmpty(t *testing.T) {
	t.Parallel()

	_, err := sparse.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	m, err := sparse.FromDense(nil)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Zero(t, r)
	require.Zero(t, c)
	require.Empty(t, m.RowSums())
}

func TestAt_AndRow(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{
		{0, 7, 0, 1},
		{0, 0, 0, 0},
		{2, 0, 3, 0},
	})

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	cols, vals, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []float64{2, 3}, vals)

	cols, vals, err = m.Row(1)
	require.NoError(t, err)
	require.Empty(t, cols)
	require.Empty(t, vals)

	_, _, err = m.Row(-1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	var nilM *sparse.CSR
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestIdentityAndZeros(t *testing.T) {
	t.Parallel()

	id, err := sparse.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Dense())

	_, err = sparse.Identity(-2)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	z, err := sparse.Zeros(2, 2)
	require.NoError(t, err)
	require.Zero(t, z.NNZ())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{{1, 2}, {0, 3}})
	c := m.Clone()
	require.Equal(t, m.Dense(), c.Dense())

	_, vals, err := c.Row(0)
	require.NoError(t, err)
	vals[0] = 99 // views alias the clone only

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
