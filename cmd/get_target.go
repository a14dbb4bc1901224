package cmd

import (
	"fmt"

	"github.com/PolarWolf314/obslog/internal/workflows"
	"github.com/spf13/cobra"
)

var getTargetCmd = &cobra.Command{
	Use:   "get-target",
	Short: "Print the current target file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		result, err := workflows.GetTarget(cmd.Context(), settings)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read target: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Decoded)
		return nil
	},
}
