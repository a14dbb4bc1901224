package cmd

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/obslog/internal/errors"
	"github.com/PolarWolf314/obslog/internal/ui"
	"github.com/PolarWolf314/obslog/internal/vault"
	"github.com/PolarWolf314/obslog/internal/workflows"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <TEXT>",
	Short: "Append text to the target note",
	Long: `Sends TEXT to the current target note in the vault.

The text is sent as-is with Content-Type text/markdown. Multiple arguments
are joined with single spaces. The request times out after 3 seconds and is
not retried.

Examples:
  obslog log "- [ ] call the plumber"
  obslog log met Sam for coffee
  obslog log -- --verbose is part of the text`,
	Args: cobra.MinimumNArgs(1),
	// Markdown list items start with "-", so TEXT must never be read as flags.
	DisableFlagParsing: true,
	RunE:               runLog,
}

// splitLogArgs consumes the leading flags the log command still understands
// and returns the remaining words of the text. Scanning stops at the first
// other word, and a single "--" ends it explicitly.
func splitLogArgs(args []string) (text []string, help bool) {
	for i, arg := range args {
		switch arg {
		case "-h", "--help":
			help = true
		case "-v", "--verbose":
			verbose = true
		case "-d", "--debug":
			debug = true
		case "--":
			return args[i+1:], help
		default:
			return args[i:], help
		}
	}
	return nil, help
}

func runLog(cmd *cobra.Command, args []string) error {
	text, help := splitLogArgs(args)
	initLogger()
	if help {
		return cmd.Help()
	}
	if len(text) == 0 {
		return fmt.Errorf("requires at least 1 arg(s), only received 0")
	}

	Logger.Infof("Starting log command")
	out := cmd.OutOrStdout()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	body := strings.Join(text, " ")
	client := vault.NewClient(vaultOptions...)

	stop := func() {}
	result, err := workflows.Log(cmd.Context(), settings, workflows.LogOptions{
		Body:   body,
		Client: client,
		BeforeSend: func(targetPath string) {
			fmt.Fprintln(out, targetPath)
			Logger.Debugf("POST %s (%d bytes)", client.URL(targetPath), len(body))
			_, stop = startSpinner("Sending to vault...")
		},
	})
	stop()

	if errors.Is(err, kerrors.ErrNoAPIKey) {
		fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" You need to set your api key with "+ui.Code.Sprint("obslog key <API_KEY>"))
		return nil
	}
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to send log: %w", err)
	}

	Logger.Infof("Vault responded with status %d", result.Response.StatusCode)
	fmt.Fprint(out, ui.EnsureNewline(result.Response.Body))
	return nil
}
