// SPDX-License-Identifier: MIT

// Package centrality computes PageRank and HITS scores over a directed,
// weighted graph by sparse-matrix power iteration.
//
// Both engines are pure functions of a Graph adapter (an ordered nodelist
// plus an aligned *sparse.CSR adjacency) and a set of functional options.
// They keep no state between calls, start no goroutines, and never modify
// the adjacency matrix: each call builds its own transformed copy.
//
// PageRank:
//
//	scores, err := centrality.PageRank[string](view,
//	    centrality.WithAlpha(0.9),
//	    centrality.WithPersonalization(map[string]float64{"A": 1}),
//	)
//
//	x ← α·(x·P + Σx[dangling]·d) + (1−α)·p   until ‖Δx‖₁ < N·tol
//
//	P is A with each non-empty row scaled to sum to 1; rows of nodes without
//	out-edges stay zero and their mass is redistributed by d (the dangling
//	weights, p by default).
//
// HITS:
//
//	hubs, authorities, err := centrality.HITS[string](view, centrality.WithNormalized(true))
//
//	x ← (AᵀA·x) / max(AᵀA·x)   until ‖Δx‖₁ < tol
//	authorities = x, hubs = A·x
//
// Failures:
//
//	An empty graph is not an error: PageRank returns {} and HITS ({}, {}).
//	A personalization, nstart or dangling mapping that sums to zero fails with
//	its own sentinel instead of producing NaN. Exhausting the iteration bound
//	fails with *PowerIterationFailedConvergence; no partial scores are returned.
//
// TopK orders a score map for presentation, breaking ties by nodelist order.
package centrality
