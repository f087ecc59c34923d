package division

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/divgame/core"
)

// Sentinel errors for the division game.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("division: graph is nil")

	// ErrVertexNotFound indicates a vertex ID outside the topology.
	ErrVertexNotFound = errors.New("division: vertex not found")

	// ErrInvalidRole indicates a role outside Role1..Role3 was assigned.
	ErrInvalidRole = errors.New("division: invalid role")

	// ErrCapacityMismatch indicates a capacity map that does not cover every vertex.
	ErrCapacityMismatch = errors.New("division: capacity does not match topology")
)

// Role is a vertex's labor role.
type Role uint8

// Roles.
const (
	None Role = iota
	Role1
	Role2
	Role3
)

// NumRoles is the number of labor roles (None excluded).
const NumRoles = 3

// Valid reports whether r is one of Role1..Role3.
func (r Role) Valid() bool { return r >= Role1 && r <= Role3 }

// Topology is the dense, immutable adjacency view of a core.Graph used by
// the update rule. Vertex IDs are mapped to indices 0..n-1 in ascending order.
type Topology struct {
	ids   []int
	index map[int]int
	nbrs  [][]int
}

// NewTopology snapshots g.
// Complexity: O(V + E·log d).
func NewTopology(g *core.Graph) (*Topology, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	t := &Topology{
		ids:   ids,
		index: make(map[int]int, len(ids)),
		nbrs:  make([][]int, len(ids)),
	}
	for i, id := range ids {
		t.index[id] = i
	}
	adj := g.AdjacencyList()
	for i, id := range ids {
		for _, nb := range adj[id] {
			t.nbrs[i] = append(t.nbrs[i], t.index[nb])
		}
	}

	return t, nil
}

// Len returns the vertex count.
func (t *Topology) Len() int { return len(t.ids) }

// IDs returns the vertex IDs in index order. The slice must not be modified.
func (t *Topology) IDs() []int { return t.ids }

// Index maps a vertex ID to its dense index.
func (t *Topology) Index(id int) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// State is a per-trial role assignment over a Topology.
type State struct {
	topo  *Topology
	roles []Role
}

// NewState returns the all-None state over t.
func NewState(t *Topology) *State {
	return &State{topo: t, roles: make([]Role, t.Len())}
}

// Topology returns the state's topology.
func (s *State) Topology() *Topology { return s.topo }

// Role returns the role of vertex id.
func (s *State) Role(id int) (Role, error) {
	i, ok := s.topo.Index(id)
	if !ok {
		return None, fmt.Errorf("division: Role(%d): %w", id, ErrVertexNotFound)
	}

	return s.roles[i], nil
}

// Assign seeds vertex id with role r. Used by drivers before the first Step.
func (s *State) Assign(id int, r Role) error {
	if !r.Valid() {
		return fmt.Errorf("division: Assign(%d, %d): %w", id, r, ErrInvalidRole)
	}
	i, ok := s.topo.Index(id)
	if !ok {
		return fmt.Errorf("division: Assign(%d): %w", id, ErrVertexNotFound)
	}
	s.roles[i] = r

	return nil
}

// Incomplete counts vertices still at None.
func (s *State) Incomplete() int {
	n := 0
	for _, r := range s.roles {
		if r == None {
			n++
		}
	}

	return n
}

// Snapshot returns vertex ID → role.
func (s *State) Snapshot() map[int]Role {
	out := make(map[int]Role, len(s.roles))
	for i, r := range s.roles {
		out[s.topo.ids[i]] = r
	}

	return out
}

// Neighborhood tallies the roles around one vertex.
// Counts[None] counts unassigned neighbors.
type Neighborhood struct {
	Counts [NumRoles + 1]int
}

// Distinct returns the number of distinct assigned roles.
func (nb Neighborhood) Distinct() int {
	d := 0
	for r := Role1; r <= Role3; r++ {
		if nb.Counts[r] > 0 {
			d++
		}
	}

	return d
}

// Diversity returns Distinct()/NumRoles, in [0,1].
func (nb Neighborhood) Diversity() float64 {
	return float64(nb.Distinct()) / NumRoles
}

// Missing returns the number of roles absent from the neighborhood.
func (nb Neighborhood) Missing() int {
	return NumRoles - nb.Distinct()
}

// neighborhood tallies vertex i in the current roles.
func (s *State) neighborhood(i int) Neighborhood {
	var nb Neighborhood
	for _, j := range s.topo.nbrs[i] {
		nb.Counts[s.roles[j]]++
	}

	return nb
}
