package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/obslog/internal/audit"
	"github.com/PolarWolf314/obslog/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	historyReverse bool
	historyJSON    bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "limit number of entries shown")
	historyCmd.Flags().BoolVar(&historyReverse, "reverse", false, "show most recent entries first")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
}

// resetHistoryCommandState resets the history command's global state for testing.
func resetHistoryCommandState() {
	historyLimit = 0
	historyReverse = false
	historyJSON = false
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previous key, target and log operations",
	Long: `Displays the local history of obslog operations.

The API key and the logged text are never recorded.

Examples:
  obslog history              # Full history
  obslog history -n 10        # Last 10 entries
  obslog history --json       # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		result, err := workflows.History(cmd.Context(), settings.Dir(), workflows.HistoryOptions{
			Limit:   historyLimit,
			Reverse: historyReverse,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(result.Entries) == 0 {
			fmt.Fprintln(out, "No history entries found.")
			return nil
		}

		if historyJSON {
			return outputHistoryJSON(out, result.Entries)
		}

		for _, e := range result.Entries {
			fmt.Fprintf(out, "%-19s  %-6s  %s\n", workflows.FormatDateTime(e.Timestamp), e.Operation, workflows.FormatDetails(e))
		}
		return nil
	},
}

func outputHistoryJSON(out io.Writer, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
