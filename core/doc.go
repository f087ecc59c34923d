// Package core provides the thread-safe, in-memory simple graph used by every
// other divgame package.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; every edge {u,v} is stored once and mirrored in
//     the adjacency map so that HasEdge(u,v) == HasEdge(v,u).
//   - Simple: self-loops return ErrLoopNotAllowed, a second edge between the
//     same endpoints returns ErrMultiEdgeNotAllowed.
//   - Vertices are non-negative integers. Generated graphs use 0..n-1; graphs
//     read from edge-list files use whatever IDs appear in the file.
//   - Deterministic enumeration: Vertices(), Edges() and NeighborIDs() are
//     always sorted ascending.
//   - A single sync.RWMutex guards the catalog, so a graph instance may be
//     shared read-only by many concurrent trials.
//
// Core Methods:
//
//	AddVertex(id int) error                 // O(1), idempotent
//	HasVertex(id int) bool                  // O(1)
//	AddEdge(u, v int) error                 // O(1), auto-adds endpoints
//	HasEdge(u, v int) bool                  // O(1)
//	NeighborIDs(id int) ([]int, error)      // O(d·log d)
//	Degree(id int) (int, error)             // O(1)
//	Vertices() []int                        // O(V·log V)
//	Edges() []Edge                          // O(E·log E)
//	VertexCount() int / EdgeCount() int     // O(1)
//	Clone() *Graph                          // O(V+E)
//
// Errors:
//
//	ErrNegativeVertexID    – vertex ID below zero
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – parallel edge
package core
