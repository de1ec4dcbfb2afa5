// SPDX-License-Identifier: MIT

// Package digraph declares Graph, its options, edge attributes and the
// sentinel errors returned by graph and view operations.
//
// Errors:
//
//	ErrNodeNotFound       - requested node does not exist.
//	ErrEdgeNotFound       - requested edge does not exist.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrBadWeight          - NaN or ±Inf edge attribute.
//	ErrDuplicateNode      - a nodelist handed to NewView repeats a node.
//	ErrDimensionMismatch  - nodelist length and matrix shape disagree.
//	ErrNilMatrix          - NewView called with a nil matrix.
//	ErrTooFewNodes        - generator size below its minimum.
//	ErrInvalidProbability - generator edge probability outside [0,1].
//	ErrNeedRandSource     - stochastic generator called without an rng.
package digraph

import (
	"errors"
	"sync"
)

// Sentinel errors for digraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("digraph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrBadWeight indicates a non-finite edge attribute value.
	ErrBadWeight = errors.New("digraph: edge attribute must be finite")

	// ErrDuplicateNode indicates a nodelist that repeats an identifier.
	ErrDuplicateNode = errors.New("digraph: duplicate node in nodelist")

	// ErrDimensionMismatch indicates a nodelist that is not aligned with its matrix.
	ErrDimensionMismatch = errors.New("digraph: nodelist and matrix shape disagree")

	// ErrNilMatrix indicates a nil adjacency matrix.
	ErrNilMatrix = errors.New("digraph: nil adjacency matrix")

	// ErrTooFewNodes indicates a generator size below the allowed minimum.
	ErrTooFewNodes = errors.New("digraph: too few nodes")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("digraph: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator was given a nil rng.
	ErrNeedRandSource = errors.New("digraph: rng is required")
)

// DefaultWeightKey is the edge attribute conventionally holding the weight.
const DefaultWeightKey = "weight"

// GraphOption configures a Graph before creation.
type GraphOption func(*options)

type options struct {
	undirected bool
	allowLoops bool
}

// WithUndirected makes every edge bidirectional: u–v fills both [u][v] and [v][u].
func WithUndirected() GraphOption {
	return func(o *options) { o.undirected = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(o *options) { o.allowLoops = true }
}

// EdgeAttr sets one attribute on an edge being added.
type EdgeAttr func(attrs map[string]float64)

// WithAttr sets attribute key to v.
func WithAttr(key string, v float64) EdgeAttr {
	return func(attrs map[string]float64) { attrs[key] = v }
}

// Weight is shorthand for WithAttr(DefaultWeightKey, v).
func Weight(v float64) EdgeAttr {
	return WithAttr(DefaultWeightKey, v)
}

// Graph is an insertion-ordered, weighted graph over comparable node IDs.
//
// It is a simple graph: at most one edge per ordered pair (per unordered
// pair when undirected). Re-adding an edge merges its attributes.
type Graph[K comparable] struct {
	mu sync.RWMutex // guards every field below

	undirected bool
	allowLoops bool

	nodes []K       // insertion order; index == matrix row/col
	index map[K]int // node → position in nodes

	// adj[from][to] = attribute set; undirected edges share one map in both directions.
	adj       map[K]map[K]map[string]float64
	edgeCount int
}

// New creates an empty Graph. By default it is directed and rejects self-loops.
// Complexity: O(1).
func New[K comparable](opts ...GraphOption) *Graph[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K]{
		undirected: o.undirected,
		allowLoops: o.allowLoops,
		index:      make(map[K]int),
		adj:        make(map[K]map[K]map[string]float64),
	}
}
