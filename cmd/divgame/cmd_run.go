package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/divgame/experiment"
	"github.com/katalvlaran/divgame/internal/config"
	"github.com/katalvlaran/divgame/internal/logging"
	"github.com/katalvlaran/divgame/results"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the experiment over generated instances",
		Long: `Simulates every instance under graphs.dir and writes one summary row per
(size, instance) to output.csv, and to output.sqlite when set. Instances that
cannot be simulated are logged as "Sim failed" and written as zero rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := applySimulationFlags(cmd, cfg); err != nil {
				return err
			}
			applyGraphFlags(cmd, cfg)
			flags := cmd.Flags()
			if flags.Changed("workers") {
				cfg.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("out") {
				cfg.Output.CSV, _ = flags.GetString("out")
			}
			if flags.Changed("sqlite") {
				cfg.Output.SQLite, _ = flags.GetString("sqlite")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			csvSink, err := results.CreateCSV(cfg.Output.CSV)
			if err != nil {
				return err
			}
			var dbSink results.Sink
			if cfg.Output.SQLite != "" {
				db, err := results.OpenSQLite(ctx, cfg.Output.SQLite, results.RunInfo{
					Variant: cfg.Simulation.Variant,
					Seed:    cfg.Simulation.Seed,
					Trials:  cfg.Simulation.Trials,
				})
				if err != nil {
					_ = csvSink.Close()
					return err
				}
				dbSink = db
			}
			sink := results.Multi(csvSink, dbSink)
			defer sink.Close()

			if err = experiment.NewRunner(cfg, sink).Run(ctx); err != nil {
				return err
			}
			logging.FromContext(ctx).Info("Results written.", "csv", cfg.Output.CSV, "sqlite", cfg.Output.SQLite)

			return sink.Close()
		},
	}

	addSimulationFlags(cmd)
	addGraphFlags(cmd)
	cmd.Flags().Int("workers", 0, "Instances simulated concurrently")
	cmd.Flags().String("out", "", "CSV output path")
	cmd.Flags().String("sqlite", "", "Optional SQLite results database")

	return cmd
}

// addSimulationFlags registers the flags shared by run and simulate.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().String("variant", "", "homogeneous or heterogeneous")
	cmd.Flags().Float64("threshold", 0, "Homogeneous commit threshold")
	cmd.Flags().Int("trials", 0, "Trials per instance")
	cmd.Flags().Int("max-steps", 0, "Step cap per trial")
	cmd.Flags().Bool("stall", false, "Stop a trial at the first step that commits nothing")
}

func applySimulationFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("variant") {
		if cfg.Simulation.Variant, err = flags.GetString("variant"); err != nil {
			return err
		}
	}
	if flags.Changed("threshold") {
		if cfg.Simulation.Threshold, err = flags.GetFloat64("threshold"); err != nil {
			return err
		}
	}
	if flags.Changed("trials") {
		if cfg.Simulation.Trials, err = flags.GetInt("trials"); err != nil {
			return err
		}
	}
	if flags.Changed("max-steps") {
		if cfg.Simulation.MaxSteps, err = flags.GetInt("max-steps"); err != nil {
			return err
		}
	}
	if flags.Changed("stall") {
		if cfg.Simulation.StallDetection, err = flags.GetBool("stall"); err != nil {
			return err
		}
	}
	return nil
}
