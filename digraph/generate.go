// SPDX-License-Identifier: MIT
// Package digraph: deterministic topology generators over int node IDs.
//
// Every generator adds nodes 0..n-1 in ascending order and emits edges in
// a fixed order, so the resulting nodelist and Snapshot are reproducible.
// Generators validate parameters before touching the graph and return
// only sentinel errors wrapped with the generator name.

package digraph

import (
	"fmt"
	"math/rand"
)

// Generator names used as error prefixes.
const (
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Weight range drawn by RandomSparse: [minRandomWeight, minRandomWeight+spanRandomWeight).
const (
	minRandomWeight  = 0.1
	spanRandomWeight = 4.0
)

// Cycle returns the directed ring 0→1→…→n-1→0. n ≥ 2.
func Cycle(n int) (*Graph[int], error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < min=2: %w", methodCycle, n, ErrTooFewNodes)
	}
	g := nodes(n)
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Star returns hub 0 linked both ways to leaves 1..n-1. n ≥ 2.
// Edges are emitted hub→leaf then leaf→hub, by increasing leaf.
func Star(n int) (*Graph[int], error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < min=2: %w", methodStar, n, ErrTooFewNodes)
	}
	g := nodes(n)
	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0→%d): %w", methodStar, leaf, err)
		}
		if err := g.AddEdge(leaf, 0); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d→0): %w", methodStar, leaf, err)
		}
	}

	return g, nil
}

// Complete returns the directed complete graph without loops. n ≥ 1.
func Complete(n int) (*Graph[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewNodes)
	}
	g := nodes(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi-like graph: each admissible pair is an
// edge with probability p and a weight drawn uniformly from [0.1, 4.1).
//
// Directed graphs try ordered pairs (i,j), i asc then j asc, including i==j
// only when opts contain WithLoops. Undirected graphs try i<j (plus i==j with loops).
//
// Errors:
//   - ErrTooFewNodes for n < 1.
//   - ErrInvalidProbability for p outside [0,1] (NaN included).
//   - ErrNeedRandSource for a nil rng.
//
// The same rng state yields the same graph.
func RandomSparse(n int, p float64, rng *rand.Rand, opts ...GraphOption) (*Graph[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewNodes)
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	g := nodes(n, opts...)
	var i, j, from int
	for i = 0; i < n; i++ {
		from = 0
		if g.undirected {
			from = i
		}
		for j = from; j < n; j++ {
			if i == j && !g.allowLoops {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			w := minRandomWeight + spanRandomWeight*rng.Float64()
			if err := g.AddEdge(i, j, Weight(w)); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodRandomSparse, i, j, w, err)
			}
		}
	}

	return g, nil
}

// nodes returns a graph holding 0..n-1.
func nodes(n int, opts ...GraphOption) *Graph[int] {
	g := New[int](opts...)
	for i := 0; i < n; i++ {
		g.ensureNode(i)
	}

	return g
}
