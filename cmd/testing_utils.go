package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/obslog/internal/configs"
)

// setupTestEnvironment points the settings at a fresh temporary directory,
// disables color and restores the command state when the test ends.
// It returns the settings directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "obslog")
	t.Setenv(configs.ConfigDirEnv, dir)
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	t.Cleanup(func() {
		ResetGlobalState()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	return dir
}

// runCLI executes the root command with args and returns stdout, stderr
// and the command error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// loadTestSettings reads the settings file the way a fresh invocation would.
func loadTestSettings(t *testing.T, dir string) *configs.Settings {
	t.Helper()
	settings := configs.LoadSettings(configs.SettingsPath(dir))
	if settings.LoadErr != nil {
		t.Fatalf("Failed to load settings: %v", settings.LoadErr)
	}
	return settings
}
