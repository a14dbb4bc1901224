package cmd

import (
	"fmt"

	"github.com/PolarWolf314/obslog/internal/ui"
	"github.com/PolarWolf314/obslog/internal/workflows"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key <API_KEY>",
	Short: "Set the API key",
	Long: `Stores the Local REST API key used as a bearer token for every log.

The key replaces any previously stored key and is saved immediately.

Example:
  obslog key 0123456789abcdef`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key command")

		settings, err := loadSettings()
		if err != nil {
			return err
		}

		if err := workflows.SetKey(cmd.Context(), settings, args[0]); err != nil {
			return Logger.ErrorfAndReturn("Failed to save api key: %w", err)
		}

		Logger.Infof("Key written to %s", settings.Path())
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" Key saved")
		return nil
	},
}
