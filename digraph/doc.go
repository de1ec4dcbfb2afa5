// SPDX-License-Identifier: MIT

// Package digraph is the graph adapter for lvlrank: a small, thread-safe,
// insertion-ordered weighted graph whose snapshots expose exactly what the
// centrality engines consume - a node ordering and a sparse adjacency matrix
// aligned to that ordering.
//
// Node identifiers are any comparable Go type. The order in which nodes are
// first added (explicitly via AddNode or implicitly via AddEdge) defines the
// nodelist and therefore the row/column index of each node in the matrix.
//
// Edges carry a free-form set of numeric attributes. Snapshot picks one
// attribute key as the edge weight; when an edge lacks that attribute its
// weight is 1, and an empty key treats every edge as weight 1.
//
// Quick example:
//
//	g := digraph.New[string]()
//	_ = g.AddEdge("A", "B", digraph.Weight(2))
//	_ = g.AddEdge("B", "C")
//	view, _ := g.Snapshot(digraph.DefaultWeightKey)
//	view.Nodelist()    // [A B C]
//	view.SparseArray() // [[0 2 0] [0 0 1] [0 0 0]]
//
// Generators (Cycle, Star, Complete, RandomSparse) build int-keyed graphs
// with a fixed node and edge order, for tests and benchmarks.
//
// Concurrency:
//
//	Graph methods are safe for concurrent use (single sync.RWMutex).
//	A View is an immutable snapshot; later graph mutations never reach it.
package digraph
