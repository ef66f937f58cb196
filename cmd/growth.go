package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-vector/pkg/app"
	"github.com/deploymenttheory/go-vector/pkg/app/growth"
)

var growthCmd = &cobra.Command{
	Use:   "growth [count]",
	Short: "Trace capacity growth while appending to an empty vector",
	Long: `Append count ints to an empty vector and list every reallocation.

Capacity starts at zero and doubles whenever an append finds the vector full,
so count appends perform about log2(count)+1 reallocations.

Examples:
  govec growth 100
  govec growth -o yaml`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGrowth(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(growthCmd)
}

func runGrowth(cmd *cobra.Command, args []string) error {
	count := cfg.Growth.Count
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("invalid count %q", args[0]), err)
		}
		count = n
	}

	ctx, cancel, err := newAppContext(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	response, err := growth.Handle(ctx, &growth.Request{Count: count})
	if err != nil {
		return err
	}

	return growth.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}
