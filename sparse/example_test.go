// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrank/sparse"
)

// ExampleCSR_ScaleRows row-normalizes an adjacency matrix into a
// row-stochastic transition matrix; the empty (dangling) row stays empty.
func ExampleCSR_ScaleRows() {
	a, _ := sparse.FromDense([][]float64{
		{0, 1, 3},
		{0, 0, 0},
		{2, 0, 0},
	})

	s := a.RowSums()
	for i := range s {
		if s[i] != 0 {
			s[i] = 1 / s[i]
		}
	}
	p, _ := a.ScaleRows(s)
	fmt.Println(p.Dense())
	// Output: [[0 0.25 0.75] [0 0 0] [1 0 0]]
}

// ExampleCSR_TransposeMul builds the HITS authority matrix AᵀA.
func ExampleCSR_TransposeMul() {
	a, _ := sparse.FromDense([][]float64{
		{0, 1},
		{1, 0},
	})
	fmt.Println(a.TransposeMul().Dense())
	// Output: [[1 0] [0 1]]
}
