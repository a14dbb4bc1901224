package cmd

import (
	"fmt"

	"github.com/PolarWolf314/obslog/internal/ui"
	"github.com/PolarWolf314/obslog/internal/workflows"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target <TARGET_FILE>",
	Short: "Change the target file",
	Long: `Sets the note that logs are appended to.

TARGET_FILE is either a periodic note name (daily, weekly, monthly,
quarterly, yearly) or a path relative to the vault root. Each path segment
is percent-encoded separately, so spaces and symbols in note names are safe.

Examples:
  obslog target daily
  obslog target "journal/2024/Ideas & Plans.md"

` + targetNote,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting target command")

		settings, err := loadSettings()
		if err != nil {
			return err
		}

		result, err := workflows.SetTarget(cmd.Context(), settings, args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to set target: %w", err)
		}

		for _, w := range result.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning.Sprint("⚠")+" "+w)
		}

		Logger.Debugf("Stored target %s", result.Encoded)
		fmt.Fprintln(cmd.OutOrStdout(), ui.Path.Sprint(result.Decoded)+" set to target file")
		return nil
	},
}
