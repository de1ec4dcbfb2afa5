// SPDX-License-Identifier: MIT
// Package digraph: node and edge mutation and queries.
//
// Every exported method takes g.mu; unexported helpers expect the caller
// to hold it already.

package digraph

import "math"

// AddNode inserts id at the end of the nodelist. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(id K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)

	return nil
}

// HasNode reports whether id is present.
func (g *Graph[K]) HasNode(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// AddEdge creates the edge from→to, adding missing endpoints in from, to order.
// If the edge already exists its attributes are merged (last write wins).
//
// Errors:
//   - ErrLoopNotAllowed when from == to and the graph was not built WithLoops().
//   - ErrBadWeight when an attribute value is NaN or ±Inf; the graph is left unchanged.
//
// Complexity: O(len(attrs)).
func (g *Graph[K]) AddEdge(from, to K, attrs ...EdgeAttr) error {
	staged := make(map[string]float64, len(attrs))
	for _, set := range attrs {
		set(staged)
	}
	var v float64
	for _, v = range staged {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadWeight
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.ensureNode(from)
	g.ensureNode(to)

	edge, exists := g.adj[from][to]
	if !exists {
		edge = make(map[string]float64, len(staged))
		g.adj[from][to] = edge
		if g.undirected {
			g.adj[to][from] = edge
		}
		g.edgeCount++
	}
	var k string
	for k, v = range staged {
		edge[k] = v
	}

	return nil
}

// HasEdge reports whether the edge from→to exists (either direction when undirected).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// EdgeAttrs returns a copy of the attributes of from→to.
// Errors: ErrEdgeNotFound.
func (g *Graph[K]) EdgeAttrs(from, to K) (map[string]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge, ok := g.adj[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	out := make(map[string]float64, len(edge))
	for k, v := range edge {
		out[k] = v
	}

	return out, nil
}

// RemoveEdge deletes from→to (and its mirror when undirected). Nodes are kept.
// Errors: ErrEdgeNotFound.
func (g *Graph[K]) RemoveEdge(from, to K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[from], to)
	if g.undirected {
		delete(g.adj[to], from)
	}
	g.edgeCount--

	return nil
}

// Nodes returns a copy of the nodelist in insertion order.
func (g *Graph[K]) Nodes() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]K(nil), g.nodes...)
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// OutDegree returns the number of edges leaving id. Nodes with OutDegree 0
// become dangling rows in the PageRank transition matrix.
// Errors: ErrNodeNotFound.
func (g *Graph[K]) OutDegree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(out), nil
}

// Undirected reports whether edges are mirrored.
func (g *Graph[K]) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}

// ensureNode appends id to the nodelist if absent. Caller holds g.mu.
func (g *Graph[K]) ensureNode(id K) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.adj[id] = make(map[K]map[string]float64)
}
