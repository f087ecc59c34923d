package division

import (
	"fmt"
	"math/rand"
)

// DefaultThreshold is the Homogeneous threshold: commit once two of the
// three roles are visible.
const DefaultThreshold = 0.5

// Rule decides whether the unassigned vertex at dense index i commits,
// given its start-of-step neighborhood.
type Rule interface {
	Commits(i int, nb Neighborhood) bool
}

// Homogeneous applies one threshold to every vertex.
type Homogeneous struct {
	Threshold float64
}

// Commits implements Rule.
func (h Homogeneous) Commits(_ int, nb Neighborhood) bool {
	return nb.Diversity() > h.Threshold
}

// Heterogeneous gives each vertex its own capacity, laid out in Topology
// index order. Build it with NewHeterogeneous or HeterogeneousFromSlice, which
// check that every vertex has a capacity.
type Heterogeneous struct {
	capacity []float64
}

// NewHeterogeneous lays out a per-vertex capacity map (e.g. eigenvector
// centrality) in t's index order. Every vertex of t must be present.
func NewHeterogeneous(t *Topology, capacity map[int]float64) (*Heterogeneous, error) {
	if len(capacity) != t.Len() {
		return nil, fmt.Errorf("division: NewHeterogeneous: %d capacities for %d vertices: %w",
			len(capacity), t.Len(), ErrCapacityMismatch)
	}
	c := make([]float64, t.Len())
	for i, id := range t.ids {
		x, ok := capacity[id]
		if !ok {
			return nil, fmt.Errorf("division: NewHeterogeneous: vertex %d: %w", id, ErrCapacityMismatch)
		}
		c[i] = x
	}

	return &Heterogeneous{capacity: c}, nil
}

// HeterogeneousFromSlice takes capacities already in t's index order.
// The slice is copied.
func HeterogeneousFromSlice(t *Topology, capacity []float64) (*Heterogeneous, error) {
	if len(capacity) != t.Len() {
		return nil, fmt.Errorf("division: HeterogeneousFromSlice: %d capacities for %d vertices: %w",
			len(capacity), t.Len(), ErrCapacityMismatch)
	}

	return &Heterogeneous{capacity: append([]float64(nil), capacity...)}, nil
}

// Capacity returns the capacity of the vertex at dense index i.
func (h *Heterogeneous) Capacity(i int) float64 { return h.capacity[i] }

// Commits implements Rule.
func (h *Heterogeneous) Commits(i int, nb Neighborhood) bool {
	return nb.Diversity() > h.capacity[i]
}

// choose picks the role a committing vertex adopts. nb has at least one
// assigned neighbor.
func choose(nb Neighborhood, rng *rand.Rand) Role {
	var lacking [NumRoles]Role
	n := 0
	for r := Role1; r <= Role3; r++ {
		if nb.Counts[r] == 0 {
			lacking[n] = r
			n++
		}
	}
	if n > 0 {
		return lacking[pick(n, rng)]
	}

	// every role present: the rarest one
	least := nb.Counts[Role1]
	for r := Role2; r <= Role3; r++ {
		if nb.Counts[r] < least {
			least = nb.Counts[r]
		}
	}
	for r := Role1; r <= Role3; r++ {
		if nb.Counts[r] == least {
			lacking[n] = r
			n++
		}
	}

	return lacking[pick(n, rng)]
}

func pick(n int, rng *rand.Rand) int {
	if n == 1 {
		return 0
	}

	return rng.Intn(n)
}
