package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-vector/pkg/app"
	"github.com/deploymenttheory/go-vector/pkg/app/replay"
)

var replayMaxSteps int

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a script of vector operations and report length and capacity per step",
	Long: `Replay a YAML or JSON script against a vector of ints.

Each step is validated against the current length before it runs, so an
out-of-range position is reported instead of corrupting the vector.

Examples:
  # Replay a script file
  govec replay scripts/erase.yaml

  # Read the script from stdin and print JSON
  cat erase.json | govec replay - -o json`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().IntVar(&replayMaxSteps, "max-steps", 0, "maximum number of steps (default from config)")
}

func runReplay(cmd *cobra.Command, scriptPath string) error {
	ctx, cancel, err := newAppContext(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	request := &replay.Request{
		ScriptPath: scriptPath,
		MaxSteps:   cfg.Replay.MaxSteps,
	}
	if cmd.Flags().Changed("max-steps") {
		request.MaxSteps = replayMaxSteps
	}
	if scriptPath == "-" {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "failed to read script from stdin", err)
		}
		request.ScriptPath = ""
		request.Source = source
	}

	response, err := replay.Handle(ctx, request)
	if err != nil {
		return err
	}

	if err := replay.FormatOutput(ctx.Out, response, ctx.OutputFormat); err != nil {
		return err
	}
	if ctx.Verbose && ctx.OutputFormat != app.FormatTable {
		fmt.Fprintln(cmd.ErrOrStderr(), replay.FormatSummary(response))
	}
	return nil
}
