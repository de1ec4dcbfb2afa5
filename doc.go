// SPDX-License-Identifier: MIT

// Package lvlrank is a small link-analysis toolkit: PageRank and HITS
// centrality computed by power iteration over a sparse adjacency matrix.
//
// What is inside?
//
//	sparse      CSR matrix with the kernels the engines need:
//	            row sums, row scaling, x·A, A·x, transpose, A·B, AᵀA
//	digraph     thread-safe directed (or undirected) graph with weighted
//	            edge attributes, Snapshot (ordered nodelist plus its CSR
//	            adjacency) and seeded topology generators
//	centrality  PageRank (damping, personalization, dangling weights),
//	            HITS (hubs and authorities), TopK
//
// Quick example:
//
//	    A ──▶ B ──▶ C
//
//	g := digraph.New[string]()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	view, _ := g.Snapshot(digraph.DefaultWeightKey)
//	pr, _ := centrality.PageRank[string](view)   // A 0.18, B 0.34, C 0.47
//
// Any type with Nodelist() []K and SparseArray() *sparse.CSR can be ranked;
// digraph.View is the bundled adapter.
//
//	go get github.com/katalvlaran/lvlrank
package lvlrank
