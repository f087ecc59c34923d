// Command divgame generates random graph instances and runs division-of-labor
// experiments over them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/divgame/internal/config"
	"github.com/katalvlaran/divgame/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// app carries the resolved configuration from the root command to its
// subcommands.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "divgame",
		Short: "Division-of-labor dynamics on random graphs",
		Long: `divgame seeds three labor roles onto random connected graphs, lets them
spread by a local update rule and tabulates how completely and how fast
the roles settle.

Typical workflow:
  divgame generate --config experiment.yaml
  divgame run      --config experiment.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Int64("seed", 0, "Base random seed")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(a),
		newRunCmd(a),
		newSimulateCmd(a),
	)

	return rootCmd
}

// load resolves defaults, file, environment and persistent flags, then
// installs the logger in the command context.
func (a *app) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	a.cfg = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithLogger(ctx, logger))

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "divgame version %s\n", version)
		},
	}
}
