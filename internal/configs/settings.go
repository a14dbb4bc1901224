package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName names the settings directory under the user config dir.
	AppName = "obslog"

	// ConfigDirEnv overrides the settings directory when set.
	ConfigDirEnv = "OBSLOG_CONFIG_DIR"

	// SettingsFileName is the file holding api_key and target_file.
	SettingsFileName = "settings.toml"

	// HistoryFileName is the JSON Lines file of past operations.
	HistoryFileName = "history.jsonl"
)

// DefaultSettingsDir returns the directory holding obslog's settings.
// $OBSLOG_CONFIG_DIR wins over the platform config directory.
func DefaultSettingsDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}

	return filepath.Join(configDir, AppName), nil
}

// SettingsPath returns the settings file inside dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, SettingsFileName)
}
