package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-vector/pkg/app"
	"github.com/deploymenttheory/go-vector/pkg/app/selfcheck"
)

var listScenarios bool

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck [scenario...]",
	Short: "Run lifecycle scenarios over instrumented elements",
	Long: `Run built-in scenarios that store instrumented elements in vectors.

An instrumented element panics when it is read, copied or destroyed without
being constructed, and counts live instances. A scenario fails on such a
misuse, on wrong contents, or when it leaves any element alive.

Examples:
  govec selfcheck
  govec selfcheck nested copy-move
  govec selfcheck --list`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if listScenarios {
			for _, s := range selfcheck.Scenarios() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", s.Name, s.Description)
			}
			return nil
		}
		return runSelfcheck(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(selfcheckCmd)

	selfcheckCmd.Flags().BoolVar(&listScenarios, "list", false, "list available scenarios and exit")
}

func runSelfcheck(cmd *cobra.Command, only []string) error {
	ctx, cancel, err := newAppContext(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	response, err := selfcheck.Handle(ctx, &selfcheck.Request{Only: only})
	if err != nil {
		return err
	}

	if err := selfcheck.FormatOutput(ctx.Out, response, ctx.OutputFormat); err != nil {
		return err
	}
	if response.Failed > 0 {
		return app.NewError(app.ErrCodeCheckFailed, fmt.Sprintf("%d scenario(s) failed", response.Failed), nil)
	}
	return nil
}
