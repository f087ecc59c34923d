package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/divgame/core"
	"github.com/katalvlaran/divgame/dfs"
	"github.com/katalvlaran/divgame/division"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("sim: graph is nil")

	// ErrTooFewVertices indicates a graph that cannot hold three seed roles.
	ErrTooFewVertices = errors.New("sim: graph has fewer than three vertices")
)

// SeedKind records how a trial's seed vertices were chosen.
type SeedKind uint8

const (
	// SeedTriangle seeds the three vertices of a 3-cycle.
	SeedTriangle SeedKind = iota
	// SeedRandom seeds three random distinct vertices; the graph has no
	// 3-cycle.
	SeedRandom
)

// String implements fmt.Stringer.
func (k SeedKind) String() string {
	switch k {
	case SeedTriangle:
		return "triangle"
	case SeedRandom:
		return "random"
	default:
		return fmt.Sprintf("SeedKind(%d)", uint8(k))
	}
}

// Seed is the outcome of seeding one trial: Vertices[i] holds Role(i+1).
type Seed struct {
	Kind     SeedKind
	Vertices [division.NumRoles]int
}

// Seeder picks seed vertices for the trials of one graph. The triangles are
// enumerated once; Seed may then be called concurrently with distinct RNGs.
type Seeder struct {
	triangles [][]int
	ids       []int
}

// NewSeeder enumerates the triangles of g.
func NewSeeder(g *core.Graph) (*Seeder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) < division.NumRoles {
		return nil, fmt.Errorf("sim: NewSeeder: %d vertices: %w", len(ids), ErrTooFewVertices)
	}
	triangles, err := dfs.Triangles(g)
	if err != nil {
		return nil, fmt.Errorf("sim: NewSeeder: %w", err)
	}

	return &Seeder{triangles: triangles, ids: ids}, nil
}

// HasTriangle reports whether trials will be seeded on a 3-cycle.
func (s *Seeder) HasTriangle() bool { return len(s.triangles) > 0 }

// Seed draws seed vertices with rng and assigns Role1..Role3 to them in state.
func (s *Seeder) Seed(state *division.State, rng *rand.Rand) (Seed, error) {
	var seed Seed
	if len(s.triangles) > 0 {
		seed.Kind = SeedTriangle
		// every triangle equally likely
		copy(seed.Vertices[:], s.triangles[rng.Intn(len(s.triangles))])
	} else {
		seed.Kind = SeedRandom
		perm := rng.Perm(len(s.ids))
		for i := range seed.Vertices {
			seed.Vertices[i] = s.ids[perm[i]]
		}
	}

	for i, id := range seed.Vertices {
		if err := state.Assign(id, division.Role(i+1)); err != nil {
			return Seed{}, fmt.Errorf("sim: Seed: %w", err)
		}
	}

	return seed, nil
}
