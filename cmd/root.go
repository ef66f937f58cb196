package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-vector/internal/config"
	"github.com/deploymenttheory/go-vector/pkg/app"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string
	configPath   string

	// Loaded by the root PersistentPreRunE
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "govec",
	Short: "Exercise and inspect a manually managed growable vector",
	Long: `govec drives a contiguous, manually managed growable vector and reports
how its length, capacity and element lifetimes evolve.

Commands:
  replay      Replay a YAML or JSON script of vector operations
  growth      Trace capacity growth while appending
  selfcheck   Run lifecycle scenarios over instrumented elements
  config      Show the effective configuration`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return app.NewError(app.ErrCodeConfig, "failed to load configuration", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default searches ./govec.yaml, $HOME/.govec)")
}

// newAppContext builds the application context for a command run. The
// --output flag overrides the configured format; the returned cancel func
// releases the timeout and flushes the logger.
func newAppContext(cmd *cobra.Command) (*app.Context, context.CancelFunc, error) {
	format := cfg.Output
	if cmd.Flags().Changed("output") {
		format = outputFormat
	}
	if err := app.ValidateFormat(format); err != nil {
		return nil, nil, err
	}

	logger, err := app.NewLogger(cfg.Log.Level, verbose, quiet)
	if err != nil {
		return nil, nil, err
	}

	base := app.NewContext()
	base.Context = cmd.Context()
	if base.Context == nil {
		base.Context = context.Background()
	}
	base.OutputFormat = format
	base.Verbose = verbose
	base.Quiet = quiet
	base.Out = cmd.OutOrStdout()
	base.Logger = logger
	base.DefaultTimeout = cfg.Timeout

	ctx, cancel := base, context.CancelFunc(func() {})
	if cfg.Timeout > 0 {
		ctx, cancel = base.WithTimeout(cfg.Timeout)
	}
	logger.Debug("command started",
		zap.String("command", cmd.Name()),
		zap.String("output", format),
		zap.Duration("timeout", cfg.Timeout))

	return ctx, func() {
		cancel()
		_ = logger.Sync()
	}, nil
}
