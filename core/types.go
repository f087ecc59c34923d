// File: types.go
// Role: Graph and Edge types, sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that a vertex ID below zero was supplied.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair in canonical form (U < V).
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical Edge for the pair {a,b}.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Graph is the simple undirected graph.
//
// adjacency[u][v] exists iff {u,v} is an edge; both directions are stored.
// Isolated vertices are kept with an empty (non-nil) neighbor set.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int]map[int]struct{})}
}
