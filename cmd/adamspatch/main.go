// Package main is the entry point for the adamspatch CLI.
//
// adamspatch splits the region between two polynomial curves into patches of
// equal area, separated by fixed-width separators.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/adamspatch/patch/internal/config"
	"github.com/adamspatch/patch/internal/log"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds state shared by all subcommands. It is populated before any
// subcommand runs.
type app struct {
	envFile     string
	problemFile string
	format      string

	cfg    config.AppConfig
	logger *log.Logger
}

func rootCmd() *cobra.Command {
	a := &app{logger: log.Discard()}

	cmd := &cobra.Command{
		Use:   "adamspatch",
		Short: "Split a region into patches of equal area",
		Long: `adamspatch splits the region between a lower and an upper polynomial curve
into patches of equal area, separated by separators of a fixed width.

Problems are configured with ADAMSPATCH_* environment variables, a .env file,
a YAML problem file, or flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.envFile, a.problemFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = log.NewLogger(cmd.ErrOrStderr(), cfg).With("command", cmd.Name())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	flags.StringVarP(&a.problemFile, "problem", "p", "", "Path to a YAML problem file")
	flags.StringVarP(&a.format, "output", "o", formatText, "Output format (text, json or yaml)")

	cmd.AddCommand(areaCmd(a))
	cmd.AddCommand(layoutCmd(a))
	cmd.AddCommand(solveCmd(a))
	cmd.AddCommand(sweepCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the .env file, environment variables
// and the problem file.
func loadConfig(envFile, problemFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile, problemFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
