// Package: divgame/builder
//
// impl_fixed.go - deterministic topologies: Complete, Path, Cycle, Empty.
//
// Contract:
//   - Vertices 0..n-1 are added in ascending order.
//   - Edges are emitted in stable increasing order.
//   - Return only sentinel errors; never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/divgame/core"
)

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodEmpty    = "Empty"

	minCompleteNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minEmptyNodes    = 0
)

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds P_n: 0-1-…-(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(i-1, i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i-1, i, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		// close the ring
		if err := g.AddEdge(n-1, 0); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,0): %w", methodCycle, n-1, err)
		}

		return nil
	}
}

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}

		return addVertices(g, methodEmpty, n)
	}
}

// addVertices inserts 0..n-1, wrapping failures with the method tag.
func addVertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}

	return nil
}
