package cmd

import (
	"fmt"

	"github.com/PolarWolf314/obslog/internal/configs"
	logger "github.com/PolarWolf314/obslog/internal/logging"
	"github.com/PolarWolf314/obslog/internal/vault"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

const targetNote = `NOTE: Target is relative to the vault root. It must not begin or end with a
slash. Periodic note names such as daily or quarterly are accepted instead.`

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// vaultOptions are passed to every vault client the commands build.
	vaultOptions []vault.Option

	rootCmd = &cobra.Command{
		Use:   "obslog",
		Short: "Quickly send things to Obsidian from the command line",
		Long: `obslog appends short notes to an Obsidian vault through the Local REST API
plugin, and remembers your API key and target note between runs.

Examples:
  # Store the API key shown in the plugin settings
  obslog key 0123456789abcdef

  # Log to this week's periodic note
  obslog target weekly
  obslog log "- shipped the release"

  # Log to a named note
  obslog target "projects/Idea #1"
  obslog log "another thought"

` + targetNote,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Arguments are valid by now; later failures are not usage errors.
			cmd.SilenceUsage = true
			initLogger()
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			banner := figure.NewFigure("obslog", "", true)
			fmt.Fprintln(cmd.OutOrStdout(), banner.String())
			return cmd.Help()
		},
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(getTargetCmd)
	rootCmd.AddCommand(historyCmd)
}

func initLogger() {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings loads the settings for this invocation. An unreadable file is
// not an error; the defaults are used instead.
func loadSettings() (*configs.Settings, error) {
	dir, err := configs.DefaultSettingsDir()
	if err != nil {
		return nil, Logger.ErrorfAndReturn("Failed to locate settings: %w", err)
	}

	settings := configs.LoadSettings(configs.SettingsPath(dir))
	if settings.LoadErr != nil {
		Logger.Debugf("Ignoring unreadable settings: %v", settings.LoadErr)
	}
	Logger.Debugf("Using settings at %s", settings.Path())

	return settings, nil
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// SetVaultOptions sets the options used to build vault clients, for testing.
func SetVaultOptions(opts ...vault.Option) {
	vaultOptions = opts
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	vaultOptions = nil
	resetHistoryCommandState()
	resetCobraFlagState(rootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag so one test's
// flags do not leak into the next.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	c.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
