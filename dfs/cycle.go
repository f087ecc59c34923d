// Package dfs implements depth-first structural queries over core.Graph:
// a fundamental cycle basis, triangle enumeration and connected components.
//
// CycleBasis grows a depth-first spanning forest with an explicit stack and
// closes one cycle per non-tree edge (Paton's algorithm). The basis of a
// connected graph has exactly E - V + 1 cycles.
//
// Complexity:
//
//   - Time:   O(V + E·L)   (L = longest fundamental cycle)
//   - Memory: O(V + E)
package dfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/divgame/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// CycleBasis returns a list of cycles forming a basis of the cycle space of g.
// Each cycle is an open vertex sequence [v0 v1 … vk] (v0 is not repeated).
//
// Roots are taken in ascending vertex order and neighbors are expanded in
// ascending order, so the basis is deterministic for a given graph.
func CycleBasis(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := g.AdjacencyList()
	var (
		cycles [][]int
		pred   = make(map[int]int, len(adj))              // spanning-forest parent
		used   = make(map[int]map[int]struct{}, len(adj)) // vertex → neighbors already closing a cycle with it
	)

	for _, root := range g.Vertices() {
		if _, seen := pred[root]; seen {
			continue
		}

		// 1) start a new tree at root
		stack := []int{root}
		pred[root] = root
		used[root] = map[int]struct{}{}

		for len(stack) > 0 {
			// 2) pop the most recent vertex (depth-first)
			z := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			zused := used[z]

			for _, nbr := range adj[z] {
				nused, known := used[nbr]
				switch {
				case !known:
					// 2a) tree edge: nbr joins the forest below z
					pred[nbr] = z
					stack = append(stack, nbr)
					used[nbr] = map[int]struct{}{z: {}}
				case nbr == z:
					// loops cannot exist in core.Graph
				default:
					if _, closed := zused[nbr]; closed {
						continue
					}
					// 2b) non-tree edge z—nbr: walk z's ancestors until one is
					//     adjacent to nbr through an already-used edge
					cycle := []int{nbr, z}
					p, ok := pred[z]
					if !ok {
						return nil, fmt.Errorf("dfs: CycleBasis: missing parent of %d", z)
					}
					for {
						if _, hit := nused[p]; hit {
							break
						}
						cycle = append(cycle, p)
						p = pred[p]
					}
					cycle = append(cycle, p)
					cycles = append(cycles, cycle)
					nused[z] = struct{}{}
				}
			}
		}
	}

	return cycles, nil
}

// Triangles returns every 3-cycle of g as an ascending triple [u v w],
// ordered lexicographically. Unlike the 3-cycles of CycleBasis, the list is
// complete: a fundamental basis may hold none of a graph's triangles.
//
// Complexity: O(V + E·d) (d = max degree).
func Triangles(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := g.AdjacencyList()
	var out [][]int
	for _, u := range g.Vertices() {
		for _, v := range adj[u] {
			if v <= u {
				continue
			}
			// merge the sorted lists of u and v, keeping common w > v
			a, b := adj[u], adj[v]
			for i, j := 0, 0; i < len(a) && j < len(b); {
				switch {
				case a[i] < b[j]:
					i++
				case a[i] > b[j]:
					j++
				default:
					if w := a[i]; w > v {
						out = append(out, []int{u, v, w})
					}
					i++
					j++
				}
			}
		}
	}

	return out, nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := g.AdjacencyList()
	seen := make(map[int]bool, len(adj))
	var comps [][]int

	for _, root := range g.Vertices() {
		if seen[root] {
			continue
		}
		var comp []int
		stack := []int{root}
		seen[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for _, nbr := range adj[v] {
				if !seen[nbr] {
					seen[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether g has exactly one component.
// The empty graph is not connected.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}
