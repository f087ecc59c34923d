package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/divgame/division"
	"github.com/katalvlaran/divgame/internal/logging"
)

// DefaultMaxSteps caps a trial that does not converge.
const DefaultMaxSteps = 5000

type runConfig struct {
	maxSteps    int
	stopOnStall bool
}

// Option customizes Run.
type Option func(*runConfig)

// WithMaxSteps sets the step cap. Panics on n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sim: WithMaxSteps(%d)", n))
	}
	return func(c *runConfig) { c.maxSteps = n }
}

// WithStallDetection ends a trial as soon as a step commits no vertex. The
// rule reads only the snapshot, so an unchanged snapshot cannot progress.
func WithStallDetection(on bool) Option {
	return func(c *runConfig) { c.stopOnStall = on }
}

// Result is the outcome of one trial.
type Result struct {
	Seed       Seed
	Trajectory Trajectory
	// Missing maps every vertex to the number of roles absent from its
	// final neighborhood.
	Missing map[int]int
	// Deficit is Σ Missing / 3.
	Deficit   float64
	Steps     int // steps to convergence; the cap when not converged
	Converged bool
	Stalled   bool
}

// Run seeds a fresh state over topo and iterates rule until every vertex
// holds a role or the step cap is reached. rng drives seeding and role
// choices. ctx is checked between steps.
func Run(ctx context.Context, topo *division.Topology, seeder *Seeder, rule division.Rule,
	rng *rand.Rand, opts ...Option) (*Result, error) {
	cfg := runConfig{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logging.FromContext(ctx)

	state := division.NewState(topo)
	seed, err := seeder.Seed(state, rng)
	if err != nil {
		return nil, err
	}
	if seed.Kind == SeedRandom {
		log.Warn("couldn't find a cycle", "n", topo.Len(), "seed", seed.Vertices)
	}

	res := &Result{Seed: seed}
	tracing := log.Enabled(ctx, logging.LevelTrace)
	traj := make(Trajectory, 1, 16)
	traj[0] = state.Incomplete()
	for step := 1; step <= cfg.maxSteps && traj[len(traj)-1] > 0; step++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("sim: Run: step %d: %w", step, err)
		}
		sr := division.Step(state, rule, rng)
		traj = append(traj, sr.Incomplete)
		if tracing {
			log.Log(ctx, logging.LevelTrace, "step", "step", step, "committed", sr.Committed, "incomplete", sr.Incomplete)
		}
		if cfg.stopOnStall && sr.Committed == 0 {
			res.Stalled = true
			break
		}
	}

	res.Trajectory = traj
	res.Steps, res.Converged = traj.StepsToConvergence(cfg.maxSteps)
	res.Missing = division.MissingRoles(state)
	res.Deficit = division.CompletenessDeficit(state)

	return res, nil
}
