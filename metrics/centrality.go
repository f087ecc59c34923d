// File: centrality.go
// Role: eigenvector centrality by power iteration on (A + I).
//
// Algorithm:
//   - Stage 1: x⁰ = 1/n for every vertex.
//   - Stage 2: xᵏ⁺¹ = (A + I)·xᵏ, then L2-normalize.
//   - Stage 3: stop when Σ|xᵏ⁺¹ − xᵏ| < n·tol; fail after maxIter sweeps.
//
// Adding I shifts the spectrum by one, which keeps the iteration from
// oscillating on bipartite graphs while leaving the dominant eigenvector
// unchanged.

package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/divgame/core"
)

// ErrNotConverged is returned if power iteration does not converge within maxIter sweeps.
var ErrNotConverged = errors.New("metrics: eigenvector centrality did not converge")

// Default power-iteration controls.
const (
	DefaultCentralityMaxIter = 100
	DefaultCentralityTol     = 1e-6
)

// EigenvectorCentrality returns vertex → centrality (L2 norm 1) using the
// default iteration controls.
func EigenvectorCentrality(g *core.Graph) (map[int]float64, error) {
	return EigenvectorCentralityWith(g, DefaultCentralityMaxIter, DefaultCentralityTol)
}

// EigenvectorCentralityWith is EigenvectorCentrality with explicit controls.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph for invalid input.
//   - ErrNotConverged after maxIter sweeps.
//
// Complexity: O(maxIter·(V+E)) time, O(V) space.
func EigenvectorCentralityWith(g *core.Graph, maxIter int, tol float64) (map[int]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// Stage 1: dense indexing and uniform start vector
	index := make(map[int]int, n)
	for i, v := range verts {
		index[v] = i
	}
	adj := g.AdjacencyList()
	nbrs := make([][]int, n)
	for i, v := range verts {
		for _, u := range adj[v] {
			nbrs[i] = append(nbrs[i], index[u])
		}
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}
	last := make([]float64, n)

	// Stage 2: iterate (A + I)
	var (
		iter, i    int
		norm, diff float64
	)
	for iter = 0; iter < maxIter; iter++ {
		copy(last, x)
		for i = 0; i < n; i++ {
			for _, j := range nbrs[i] {
				x[j] += last[i]
			}
		}

		norm = 0
		for i = 0; i < n; i++ {
			norm += x[i] * x[i]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}
		diff = 0
		for i = 0; i < n; i++ {
			x[i] /= norm
			diff += math.Abs(x[i] - last[i])
		}

		// Stage 3: convergence check
		if diff < float64(n)*tol {
			out := make(map[int]float64, n)
			for i, v := range verts {
				out[v] = x[i]
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("metrics: EigenvectorCentrality: %d iterations: %w", maxIter, ErrNotConverged)
}
