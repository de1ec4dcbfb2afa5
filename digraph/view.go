// SPDX-License-Identifier: MIT
// Package digraph: immutable (nodelist, adjacency) snapshots.
//
// A View is what the centrality engines read. It is detached from the Graph
// it came from, so engines never observe concurrent mutation.

package digraph

import (
	"fmt"

	"github.com/katalvlaran/lvlrank/sparse"
)

// View is an immutable snapshot: Nodelist()[i] labels row and column i of SparseArray().
type View[K comparable] struct {
	nodelist []K
	index    map[K]int
	a        *sparse.CSR
}

// Snapshot materializes the current graph into a View.
//
// Implementation:
//   - Stage 1: under the read lock, copy the nodelist and collect one COO
//     entry per stored direction of every edge.
//   - Stage 2: build the CSR outside the lock.
//
// Behavior highlights:
//   - Cell [i][j] is the weightKey attribute of edge i→j, or 1 when the edge
//     has no such attribute or weightKey is empty.
//   - Undirected edges fill [i][j] and [j][i]; an undirected self-loop fills [i][i] once.
//   - A zero weight leaves the cell empty, so that row may become dangling.
//
// Errors:
//   - Wrapped sparse construction errors (not expected: attributes are validated on insert).
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph[K]) Snapshot(weightKey string) (*View[K], error) {
	g.mu.RLock()
	nodelist := append([]K(nil), g.nodes...)
	index := make(map[K]int, len(g.index))
	entries := make([]sparse.Entry, 0, g.edgeCount)
	var (
		u, v  K
		i     int
		edge  map[string]float64
		w     float64
		found bool
	)
	for i, u = range g.nodes {
		index[u] = i
		for v, edge = range g.adj[u] {
			w = 1
			if weightKey != "" {
				if w, found = edge[weightKey]; !found {
					w = 1
				}
			}
			entries = append(entries, sparse.Entry{Row: i, Col: g.index[v], Value: w})
		}
	}
	g.mu.RUnlock()

	// Each (row, col) appears at most once, so map iteration order above cannot
	// change the result: NewCSR sorts by coordinate.
	a, err := sparse.NewCSR(len(nodelist), len(nodelist), entries)
	if err != nil {
		return nil, fmt.Errorf("Snapshot: %w", err)
	}

	return &View[K]{nodelist: nodelist, index: index, a: a}, nil
}

// NewView wraps an externally built (nodelist, matrix) pair.
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrDimensionMismatch unless len(nodelist) == a.Rows() == a.Cols().
//   - ErrDuplicateNode if a node repeats.
func NewView[K comparable](nodelist []K, a *sparse.CSR) (*View[K], error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows() != len(nodelist) || a.Cols() != len(nodelist) {
		return nil, fmt.Errorf("NewView: %d nodes vs %dx%d matrix: %w",
			len(nodelist), a.Rows(), a.Cols(), ErrDimensionMismatch)
	}
	index := make(map[K]int, len(nodelist))
	for i, id := range nodelist {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("NewView: node %v: %w", id, ErrDuplicateNode)
		}
		index[id] = i
	}

	return &View[K]{nodelist: append([]K(nil), nodelist...), index: index, a: a}, nil
}

// Nodelist returns the node ordering. The slice is shared; do not modify it.
func (v *View[K]) Nodelist() []K { return v.nodelist }

// SparseArray returns the adjacency matrix aligned to Nodelist.
func (v *View[K]) SparseArray() *sparse.CSR { return v.a }

// Index returns the row/column of id.
func (v *View[K]) Index(id K) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}

// Len returns the number of nodes.
func (v *View[K]) Len() int { return len(v.nodelist) }
