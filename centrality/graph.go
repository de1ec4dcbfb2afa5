// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"

	"github.com/katalvlaran/lvlrank/sparse"
)

// Graph is the adapter both engines consume: an ordered, duplicate-free
// nodelist and an N×N non-negative adjacency matrix whose cell [i][j] is the
// weight of edge nodelist[i]→nodelist[j]. *digraph.View implements it.
//
// The engines only read the matrix; callers must not mutate it during a call.
type Graph[K comparable] interface {
	Nodelist() []K
	SparseArray() *sparse.CSR
}

// adjacency returns g's matrix after checking it is present and aligned with n nodes.
func adjacency[K comparable](tag string, g Graph[K], n int) (*sparse.CSR, error) {
	a := g.SparseArray()
	if a == nil {
		return nil, centralityErrorf(tag, ErrNilGraph)
	}
	if a.Rows() != n || a.Cols() != n {
		return nil, fmt.Errorf("%s: %d nodes vs %dx%d matrix: %w", tag, n, a.Rows(), a.Cols(), ErrDimensionMismatch)
	}

	return a, nil
}
