package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect govec configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after merging defaults, the config file and
GOVEC_* environment variables (for example GOVEC_LOG_LEVEL=debug).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.EncodeYAML(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
