// SPDX-License-Identifier: MIT

package centrality_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrank/digraph"
	"github.com/katalvlaran/lvlrank/sparse"
)

// edge is a weighted directed edge used by the fixtures.
type edge struct {
	from, to string
	w        float64
}

// buildView snapshots a directed graph over nodes (in order) and edges.
func buildView(t testing.TB, nodes []string, edges []edge) *digraph.View[string] {
	t.Helper()
	g := digraph.New[string]()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, digraph.Weight(e.w)))
	}
	v, err := g.Snapshot(digraph.DefaultWeightKey)
	require.NoError(t, err)

	return v
}

// chainView is A→B→C, where C has no out-edges.
func chainView(t testing.TB) *digraph.View[string] {
	return buildView(t, []string{"A", "B", "C"}, []edge{{"A", "B", 1}, {"B", "C", 1}})
}

// cycleView is A→B→A.
func cycleView(t testing.TB) *digraph.View[string] {
	return buildView(t, []string{"A", "B"}, []edge{{"A", "B", 1}, {"B", "A", 1}})
}

// diamondView is A→B, A→C, B→C, C→A, D→C: D has no in-edges.
func diamondView(t testing.TB) *digraph.View[string] {
	return buildView(t, []string{"A", "B", "C", "D"}, []edge{
		{"A", "B", 1}, {"A", "C", 1}, {"B", "C", 1}, {"C", "A", 1}, {"D", "C", 1},
	})
}

// randomView builds an n-node graph with seeded random edges and weights.
// The edge density is drawn from the seed too; self-loops are allowed and
// some nodes usually end up dangling.
func randomView(t testing.TB, n int, seed int64) *digraph.View[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := digraph.RandomSparse(n, 0.5*rng.Float64(), rng, digraph.WithLoops())
	require.NoError(t, err)
	v, err := g.Snapshot(digraph.DefaultWeightKey)
	require.NoError(t, err)

	return v
}

// fakeGraph lets tests hand the engines a broken adapter.
type fakeGraph struct {
	nodes []string
	a     *sparse.CSR
}

func (f fakeGraph) Nodelist() []string       { return f.nodes }
func (f fakeGraph) SparseArray() *sparse.CSR { return f.a }

// sum adds up a score map.
func sum[K comparable](m map[K]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s
}

// nanValue keeps NaN out of constant expressions.
func nanValue() float64 { return math.NaN() }
