// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/NeighborIDs.
// Determinism:
//   - Edges() returns canonical edges sorted by (U, V) asc.
//   - NeighborIDs() returns IDs sorted asc.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock, reject an existing {u,v}.
//  3. Ensure endpoints, link both directions, bump the edge counter.
//
// Errors:
//   - ErrNegativeVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return ErrNegativeVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adjacency[u][v]; dup {
		return ErrMultiEdgeNotAllowed
	}

	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{} // mirror
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Symmetric in its arguments.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// NeighborIDs returns the neighbors of id sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(d·log d) time, O(d) space.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]int, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids, nil
}

// Edges returns every edge once, canonical and sorted by (U, V).
// Complexity: O(E·log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v { // each undirected edge once
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AdjacencyList returns a snapshot vertex -> sorted neighbor IDs.
// The returned slices are freshly allocated and safe to retain.
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		ids := make([]int, 0, len(nbrs))
		for v := range nbrs {
			ids = append(ids, v)
		}
		sort.Ints(ids)
		out[u] = ids
	}

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for u, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		c.adjacency[u] = cp
	}

	return c
}
