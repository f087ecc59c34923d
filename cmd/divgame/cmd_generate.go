package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/divgame/builder"
	"github.com/katalvlaran/divgame/edgelist"
	"github.com/katalvlaran/divgame/internal/config"
	"github.com/katalvlaran/divgame/internal/logging"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random connected graph instances as edge lists",
		Long: `Writes graphs.instances random connected graphs for every size in
[graphs.min_size, graphs.max_size] to graphs.dir using graphs.pattern, the
layout "run" reads. Each vertex joins one random earlier vertex; every other
pair is then linked with probability graphs.probability.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			applyGraphFlags(cmd, cfg)
			if flags := cmd.Flags(); flags.Changed("p") {
				cfg.Graphs.Probability, _ = flags.GetFloat64("p")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := logging.FromContext(ctx)
			rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
			opts := []builder.BuilderOption{builder.WithRand(rng)}

			written := 0
			for n := cfg.Graphs.MinSize; n <= cfg.Graphs.MaxSize; n++ {
				for k := 0; k < cfg.Graphs.Instances; k++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					g, err := builder.BuildGraph(opts, builder.RandomConnected(n, cfg.Graphs.Probability))
					if err != nil {
						return fmt.Errorf("generate (%d,%d): %w", n, k, err)
					}
					path := cfg.GraphPath(n, k)
					if err = edgelist.WriteFile(path, g); err != nil {
						return err
					}
					logger.Debug("Wrote instance.", "path", path, "edges", g.EdgeCount())
					written++
				}
			}
			logger.Info("Generated instances.", "count", written, "dir", cfg.Graphs.Dir)

			return nil
		},
	}

	addGraphFlags(cmd)
	cmd.Flags().Float64("p", 0, "Extra-edge probability")

	return cmd
}

// addGraphFlags registers the instance-grid flags shared by generate and run.
func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "Instance directory (overrides graphs.dir)")
	cmd.Flags().Int("min-size", 0, "Smallest graph size")
	cmd.Flags().Int("max-size", 0, "Largest graph size")
	cmd.Flags().Int("instances", 0, "Instances per size")
}

func applyGraphFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Graphs.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("min-size") {
		cfg.Graphs.MinSize, _ = flags.GetInt("min-size")
	}
	if flags.Changed("max-size") {
		cfg.Graphs.MaxSize, _ = flags.GetInt("max-size")
	}
	if flags.Changed("instances") {
		cfg.Graphs.Instances, _ = flags.GetInt("instances")
	}
}
