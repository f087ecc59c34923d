// Package: divgame/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, p).
//
// Model:
//   - Erdős–Rényi-like, but connected by construction: vertex i (i ≥ 1) is
//     first joined to one uniformly chosen earlier vertex j < i, which builds a
//     random spanning tree; then every remaining pair {j,i}, j < i, is added
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); NaN p → ErrInvalidProbability.
//   - p ≤ 0 → spanning tree only; p ≥ 1 → complete graph K_n (no RNG needed).
//   - 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); so does n ≥ 3 with
//     p ≤ 0 since the tree itself is random.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - For each i asc: one tree draw, then j asc Bernoulli draws (tree pair skipped
//     without consuming a draw).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/divgame/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
)

// RandomConnected returns a Constructor that samples a connected random graph
// over vertices 0..n-1 with extra-edge probability p.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) {
			return fmt.Errorf("%s: p=NaN: %w", methodRandomConnected, ErrInvalidProbability)
		}
		if p >= 1 {
			return Complete(n)(g, cfg)
		}
		// a tree on 1 or 2 vertices is fixed; anything larger draws
		if cfg.rng == nil && (n > 2 || p > 0) {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		if err := addVertices(g, methodRandomConnected, n); err != nil {
			return err
		}

		var (
			i, j, parent int
		)
		for i = 1; i < n; i++ {
			// 1) spanning-tree edge to an earlier vertex
			parent = 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			if err := g.AddEdge(parent, i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomConnected, parent, i, err)
			}
			if p <= 0 {
				continue
			}

			// 2) independent extra edges among earlier pairs
			for j = 0; j < i; j++ {
				if j == parent {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := g.AddEdge(j, i); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomConnected, j, i, err)
					}
				}
			}
		}

		return nil
	}
}
