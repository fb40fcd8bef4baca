package cli

import (
	"house_calculator/internal/adapter/http/routes"
	"house_calculator/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return routes.Run(cmd.Context(), a)
	},
}
