package cli

import (
	"fmt"

	"house_calculator/internal/app"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default price catalog",
	Long:  `Insert the default materials into the configured store. Nothing is inserted when the catalog already has materials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.Materials.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("error seeding catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d materials\n", n)
		return nil
	},
}
