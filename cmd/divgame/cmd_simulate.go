package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/divgame/builder"
	"github.com/katalvlaran/divgame/core"
	"github.com/katalvlaran/divgame/dfs"
	"github.com/katalvlaran/divgame/division"
	"github.com/katalvlaran/divgame/edgelist"
	"github.com/katalvlaran/divgame/internal/config"
	"github.com/katalvlaran/divgame/metrics"
	"github.com/katalvlaran/divgame/sim"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run trials on a single graph and print each one",
		Long: `Loads one edge list (--graph) or samples a random connected graph
(--n, --p), runs simulation.trials trials and prints, per trial, the seeding
path, completion rate and steps to convergence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := applySimulationFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g, err := simulationGraph(cmd, cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			summary, err := metrics.Summarize(g)
			if err != nil {
				return err
			}
			cycles, err := dfs.CycleBasis(g)
			if err != nil {
				return err
			}
			triangles, err := dfs.Triangles(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "vertices=%d edges=%d density=%.3f clustering=%.3f shortest_path=%.3f cycle_rank=%d triangles=%d\n",
				g.VertexCount(), g.EdgeCount(), summary.Density, summary.Clustering, summary.ShortestPath,
				len(cycles), len(triangles))

			topo, err := division.NewTopology(g)
			if err != nil {
				return err
			}
			seeder, err := sim.NewSeeder(g)
			if err != nil {
				return err
			}
			var rule division.Rule = division.Homogeneous{Threshold: cfg.Simulation.Threshold}
			if cfg.Simulation.Variant == config.VariantHeterogeneous {
				capacity, err := metrics.EigenvectorCentrality(g)
				if err != nil {
					return err
				}
				if rule, err = division.NewHeterogeneous(topo, capacity); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			opts := []sim.Option{
				sim.WithMaxSteps(cfg.Simulation.MaxSteps),
				sim.WithStallDetection(cfg.Simulation.StallDetection),
			}
			rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
			for trial := 0; trial < cfg.Simulation.Trials; trial++ {
				res, err := sim.Run(ctx, topo, seeder, rule, rng, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "trial %d: seed=%s %v rate=%.3f steps=%d converged=%t deficit=%.3f\n",
					trial, res.Seed.Kind, res.Seed.Vertices, res.Trajectory.CompletionRate(g.VertexCount()),
					res.Steps, res.Converged, res.Deficit)
			}

			return nil
		},
	}

	addSimulationFlags(cmd)
	cmd.Flags().String("graph", "", "Edge-list file to simulate on")
	cmd.Flags().Int("n", 10, "Vertices of the sampled graph when --graph is not set")
	cmd.Flags().Float64("p", 0, "Extra-edge probability (default graphs.probability)")

	return cmd
}

// simulationGraph loads --graph or samples a graph from --n and --p.
func simulationGraph(cmd *cobra.Command, cfg *config.Config) (*core.Graph, error) {
	flags := cmd.Flags()
	if path, _ := flags.GetString("graph"); path != "" {
		return edgelist.ReadFile(path)
	}

	n, _ := flags.GetInt("n")
	p := cfg.Graphs.Probability
	if flags.Changed("p") {
		p, _ = flags.GetFloat64("p")
	}
	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.Simulation.Seed)},
		builder.RandomConnected(n, p))
}
