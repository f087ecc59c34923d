package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/divgame/core"
	"github.com/katalvlaran/divgame/division"
	"github.com/katalvlaran/divgame/edgelist"
	"github.com/katalvlaran/divgame/internal/config"
	"github.com/katalvlaran/divgame/internal/logging"
	"github.com/katalvlaran/divgame/metrics"
	"github.com/katalvlaran/divgame/results"
	"github.com/katalvlaran/divgame/sim"
)

// ErrPanic wraps a panic recovered while simulating one instance.
var ErrPanic = errors.New("experiment: panic during simulation")

// Loader reads the graph stored at path.
type Loader func(path string) (*core.Graph, error)

// Runner executes an experiment described by a config.Config.
type Runner struct {
	cfg  *config.Config
	sink results.Sink
	load Loader
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLoader replaces edgelist.ReadFile as the instance loader. Panics on nil.
func WithLoader(l Loader) Option {
	if l == nil {
		panic("experiment: WithLoader(nil)")
	}
	return func(r *Runner) { r.load = l }
}

// NewRunner returns a Runner writing rows to sink. cfg must be valid.
func NewRunner(cfg *config.Config, sink results.Sink, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, sink: sink, load: edgelist.ReadFile}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run simulates every (size, instance) pair and writes its row. It returns
// only sink errors and context cancellation; instance failures become
// placeholder rows.
func (r *Runner) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	g := r.cfg.Graphs
	logger.Info("Starting experiment.",
		"sizes", fmt.Sprintf("%d-%d", g.MinSize, g.MaxSize),
		"instances", g.Instances,
		"trials", r.cfg.Simulation.Trials,
		"variant", r.cfg.Simulation.Variant,
		"workers", r.cfg.Workers)

	for n := g.MinSize; n <= g.MaxSize; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runSize(ctx, n); err != nil {
			return err
		}
	}

	logger.Info("Experiment complete.")
	return nil
}

// runSize simulates the instances of size n on the worker pool and writes
// their rows in k order.
func (r *Runner) runSize(ctx context.Context, n int) error {
	logger := logging.FromContext(ctx)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	count := r.cfg.Graphs.Instances
	slots := make([]chan results.Row, count)
	for k := range slots {
		slots[k] = make(chan results.Row, 1)
	}

	pool, poolCtx := errgroup.WithContext(runCtx)
	pool.SetLimit(r.cfg.Workers)
	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for k := 0; k < count; k++ {
			if poolCtx.Err() != nil {
				return
			}
			k := k
			pool.Go(func() error {
				slots[k] <- r.Instance(poolCtx, n, k)
				return nil
			})
		}
	}()

	var err error
	var running []float64
	for k := 0; k < count && err == nil; k++ {
		select {
		case row := <-slots[k]:
			if err = r.sink.Write(ctx, row); err != nil {
				err = fmt.Errorf("experiment: write row (%d,%d): %w", n, k, err)
				continue
			}
			running = append(running, row.AvgRate)
			logger.Info("Instance done.",
				"n", n, "k", k,
				"rate", mean(running),
				"n_comp", row.AvgNCompNodes,
				"steps", row.AvgSteps,
				"failed", row.Failed)
		case <-ctx.Done():
			err = ctx.Err()
		}
	}

	cancel()
	<-launched
	_ = pool.Wait()

	return err
}

// Instance simulates instance k of size n and summarizes it. It never
// fails: errors and panics are logged and produce results.FailedRow.
func (r *Runner) Instance(ctx context.Context, n, k int) (row results.Row) {
	logger := logging.FromContext(ctx).With("n", n, "k", k)
	path := r.cfg.GraphPath(n, k)

	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("%w: %v", ErrPanic, p)
			logger.Error("Sim failed", "path", path, "error", err)
			row = results.FailedRow(n, k, err)
		}
	}()

	row, err := r.simulate(logging.WithLogger(ctx, logger), n, k, path)
	if err != nil {
		logger.Log(ctx, failureLevel(err), "Sim failed", "path", path, "error", err)
		return results.FailedRow(n, k, err)
	}
	return row
}

// failureLevel separates expected data problems from unexpected faults.
func failureLevel(err error) slog.Level {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return slog.LevelDebug
	case errors.Is(err, edgelist.ErrFormat),
		errors.Is(err, metrics.ErrDisconnected),
		errors.Is(err, metrics.ErrNotConverged),
		errors.Is(err, sim.ErrTooFewVertices):
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// simulate loads one instance and aggregates its trials.
func (r *Runner) simulate(ctx context.Context, n, k int, path string) (results.Row, error) {
	sc := r.cfg.Simulation

	g, err := r.load(path)
	if err != nil {
		return results.Row{}, err
	}
	summary, err := metrics.Summarize(g)
	if err != nil {
		return results.Row{}, fmt.Errorf("experiment: metrics: %w", err)
	}

	topo, err := division.NewTopology(g)
	if err != nil {
		return results.Row{}, err
	}
	seeder, err := sim.NewSeeder(g)
	if err != nil {
		return results.Row{}, err
	}
	rule, err := r.rule(g, topo)
	if err != nil {
		return results.Row{}, err
	}

	opts := []sim.Option{sim.WithMaxSteps(sc.MaxSteps), sim.WithStallDetection(sc.StallDetection)}
	heterogeneous := sc.Variant == config.VariantHeterogeneous
	size := g.VertexCount()
	rates := make([]float64, 0, sc.Trials)
	steps := make([]float64, 0, sc.Trials)
	deficits := make([]float64, 0, sc.Trials)
	for trial := 0; trial < sc.Trials; trial++ {
		rng := rand.New(rand.NewSource(trialSeed(sc.Seed, n, k, trial)))
		res, err := sim.Run(ctx, topo, seeder, rule, rng, opts...)
		if err != nil {
			return results.Row{}, fmt.Errorf("experiment: trial %d: %w", trial, err)
		}
		rates = append(rates, res.Trajectory.CompletionRate(size))
		steps = append(steps, float64(res.Steps))
		if heterogeneous {
			deficits = append(deficits, res.Deficit)
		}
	}

	avgRate := mean(rates)
	return results.Row{
		Size:            n,
		K:               k,
		AvgRate:         avgRate,
		AvgDensity:      summary.Density,
		AvgClustering:   summary.Clustering,
		AvgShortestPath: summary.ShortestPath,
		AvgStdRate:      stddev(rates),
		AvgMedianRate:   median(rates),
		AvgIncompNodes:  float64(size) * (1 - avgRate),
		AvgNCompNodes:   mean(deficits),
		AvgSteps:        mean(steps),
	}, nil
}

// rule builds the variant's update rule for one graph.
func (r *Runner) rule(g *core.Graph, topo *division.Topology) (division.Rule, error) {
	sc := r.cfg.Simulation
	if sc.Variant != config.VariantHeterogeneous {
		return division.Homogeneous{Threshold: sc.Threshold}, nil
	}

	capacity, err := metrics.EigenvectorCentrality(g)
	if err != nil {
		return nil, fmt.Errorf("experiment: capacity: %w", err)
	}
	het, err := division.NewHeterogeneous(topo, capacity)
	if err != nil {
		return nil, err
	}
	return het, nil
}
