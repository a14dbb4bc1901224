package workflows

import (
	"context"

	"github.com/PolarWolf314/obslog/internal/audit"
	"github.com/PolarWolf314/obslog/internal/configs"
)

// SetKey stores apiKey, replacing any previous key, and saves the settings.
//
// Returns an error wrapping ErrSettingsNotSaved if the settings file cannot
// be written. The caller must treat that as fatal.
func SetKey(ctx context.Context, settings *configs.Settings, apiKey string) error {
	settings.SetAPIKey(apiKey)
	if err := settings.Save(); err != nil {
		return err
	}

	audit.Log(settings.Dir(), audit.Entry{Operation: audit.OpKey})
	return nil
}
