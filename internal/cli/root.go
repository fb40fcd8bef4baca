package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "housecalc",
	Short: "House Calculator - construction material estimation",
	Long: `housecalc estimates the construction materials of brick, concrete,
wooden and block houses.

Run "housecalc serve" to start the HTTP API, "housecalc estimate" to compute
an estimate offline from a JSON or YAML file, and "housecalc seed" to load
the default price catalog into the configured store.

Settings are read from environment variables (and a .env file).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(estimateCmd, seedCmd, serveCmd)
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
