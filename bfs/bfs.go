// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop distance from a start vertex.
// Neighbors are expanded in ascending ID order, so the visit order is
// deterministic for a given graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/divgame/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex → distance (in edges) from the start.
//   - Parent: vertex → predecessor in the BFS tree (start has none).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound for invalid input, or
// ErrNeighbors if neighbor lookup fails.
//
// Complexity: O(V + E·log d) time, O(V) space.
func BFS(g *core.Graph, start int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}

	queue := make([]int, 0, n)
	queue = append(queue, start)
	res.Depth[start] = 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, cur, err)
		}
		for _, nbr := range nbrs {
			if res.Reached(nbr) {
				continue
			}
			res.Depth[nbr] = res.Depth[cur] + 1
			res.Parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return res, nil
}
