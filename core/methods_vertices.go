// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V) time, O(V) space.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ensureVertex allocates the neighbor set of id. Caller holds the write lock.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}
