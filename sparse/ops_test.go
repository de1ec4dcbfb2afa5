// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlrank/sparse"
)

func TestRowSums(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{{1, 2, 0}, {0, 0, 0}, {0.5, 0, 0.25}})
	require.Equal(t, []float64{3, 0, 0.75}, m.RowSums())
}

func TestScaleRows(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{{1, 3}, {0, 0}, {2, 2}})
	s, err := m.ScaleRows([]float64{0.25, 0, 0.5})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.25, 0.75}, {0, 0}, {1, 1}}, s.Dense())
	require.Equal(t, [][]float64{{1, 3}, {0, 0}, {2, 2}}, m.Dense(), "source must not change")

	// A zero factor on a non-empty row empties that row.
	z, err := m.ScaleRows([]float64{0, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 2, z.NNZ())

	_, err = m.ScaleRows([]float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = m.ScaleRows([]float64{math.Inf(1), 1, 1})
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	// Non-finite factors on empty rows are never applied.
	_, err = m.ScaleRows([]float64{1, math.NaN(), 1})
	require.NoError(t, err)
}

func TestVecMulAndMulVec(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{
		{0, 1, 0},
		{2, 0, 4},
	})

	y, err := m.VecMul([]float64{3, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2}, y)

	z, err := m.MulVec([]float64{1, 2, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, z)

	_, err = m.VecMul([]float64{1, 2, 3})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = m.MulVec([]float64{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{
		{0, 1, 0},
		{2, 0, 4},
	})
	tr := m.Transpose()
	r, c := tr.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, [][]float64{{0, 2}, {1, 0}, {0, 4}}, tr.Dense())

	cols, _, err := tr.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, cols)

	require.Equal(t, m.Dense(), tr.Transpose().Dense())
}

func TestMul_MatchesDenseReference(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	a := make([][]float64, 5)
	b := make([][]float64, 4)
	for i := range a {
		a[i] = make([]float64, 4)
		for j := range a[i] {
			if rng.Intn(3) == 0 {
				a[i][j] = float64(rng.Intn(5) + 1)
			}
		}
	}
	for i := range b {
		b[i] = make([]float64, 6)
		for j := range b[i] {
			if rng.Intn(3) == 0 {
				b[i][j] = float64(rng.Intn(5) + 1)
			}
		}
	}

	p, err := mustCSR(t, a).Mul(mustCSR(t, b))
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(mustCSR(t, a).Mat(), mustCSR(t, b).Mat())
	require.True(t, mat.Equal(&want, p.Mat()), "got %v", p.Dense())

	_, err = mustCSR(t, a).Mul(mustCSR(t, a))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = mustCSR(t, a).Mul(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestTransposeMul_Symmetric(t *testing.T) {
	t.Parallel()

	// Directed edges A→B, A→C, B→C.
	m := mustCSR(t, [][]float64{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	})
	ata := m.TransposeMul()
	require.Equal(t, [][]float64{
		{0, 0, 0},
		{0, 1, 1},
		{0, 1, 2},
	}, ata.Dense())

	d := ata.Dense()
	for i := range d {
		for j := range d {
			require.Equal(t, d[i][j], d[j][i])
		}
	}
}

func TestOps_EmptyMatrix(t *testing.T) {
	t.Parallel()

	m, err := sparse.Zeros(0, 0)
	require.NoError(t, err)

	y, err := m.VecMul(nil)
	require.NoError(t, err)
	require.Empty(t, y)

	require.Zero(t, m.TransposeMul().NNZ())
}
