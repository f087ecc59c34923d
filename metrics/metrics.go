// Package metrics computes the structural graph quantities reported by the
// experiment runner: density, average clustering coefficient, average
// shortest path length and eigenvector centrality.
//
// All functions are read-only over a core.Graph and safe for concurrent use.
// Path-based quantities are undefined on disconnected graphs and return
// ErrDisconnected; callers decide whether that is fatal.
package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/divgame/bfs"
	"github.com/katalvlaran/divgame/core"
)

// Sentinel errors for metric computations.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrEmptyGraph is returned when a metric is undefined on a graph with no vertices.
	ErrEmptyGraph = errors.New("metrics: graph has no vertices")

	// ErrDisconnected is returned when a path-based metric is undefined
	// because some vertex pair has no connecting path.
	ErrDisconnected = errors.New("metrics: graph is not connected")
)

// Density returns 2|E| / (|V|(|V|-1)), or 0 when |V| < 2.
// Complexity: O(1).
func Density(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.VertexCount()
	if n < 2 {
		return 0, nil
	}

	return 2 * float64(g.EdgeCount()) / float64(n*(n-1)), nil
}

// AverageClustering returns the mean local clustering coefficient over all
// vertices. A vertex with degree < 2 contributes 0.
//
// Local coefficient: c(v) = 2·T(v) / (deg(v)·(deg(v)-1)), T(v) = number of
// edges among v's neighbors.
//
// Complexity: O(Σ deg(v)²).
func AverageClustering(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	adj := g.AdjacencyList()
	if len(adj) == 0 {
		return 0, ErrEmptyGraph
	}

	var total float64
	for _, nbrs := range adj {
		d := len(nbrs)
		if d < 2 {
			continue
		}
		links := 0
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		total += 2 * float64(links) / float64(d*(d-1))
	}

	return total / float64(len(adj)), nil
}

// AverageShortestPath returns the mean hop distance over all ordered pairs of
// distinct vertices: Σ d(u,v) / (n(n-1)). A single vertex yields 0.
//
// Errors:
//   - ErrEmptyGraph for |V| = 0.
//   - ErrDisconnected when some pair is unreachable.
//
// Complexity: O(V·(V+E)) — one BFS per source.
func AverageShortestPath(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	if n == 1 {
		return 0, nil
	}

	var sum int
	for _, src := range verts {
		res, err := bfs.BFS(g, src)
		if err != nil {
			return 0, fmt.Errorf("metrics: AverageShortestPath: %w", err)
		}
		if len(res.Depth) != n {
			return 0, fmt.Errorf("metrics: AverageShortestPath: %d of %d vertices reachable from %d: %w",
				len(res.Depth), n, src, ErrDisconnected)
		}
		for _, d := range res.Depth {
			sum += d
		}
	}

	return float64(sum) / float64(n*(n-1)), nil
}

// Summary bundles the per-instance structural metrics.
type Summary struct {
	Density      float64
	Clustering   float64
	ShortestPath float64
}

// Summarize computes Density, AverageClustering and AverageShortestPath in one
// call, returning the first error.
func Summarize(g *core.Graph) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.Density, err = Density(g); err != nil {
		return Summary{}, err
	}
	if s.Clustering, err = AverageClustering(g); err != nil {
		return Summary{}, err
	}
	if s.ShortestPath, err = AverageShortestPath(g); err != nil {
		return Summary{}, err
	}

	return s, nil
}
