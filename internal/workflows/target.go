package workflows

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/PolarWolf314/obslog/internal/audit"
	"github.com/PolarWolf314/obslog/internal/configs"
	kerrors "github.com/PolarWolf314/obslog/internal/errors"
	"github.com/PolarWolf314/obslog/internal/target"
)

// TargetResult describes the current target.
type TargetResult struct {
	// Encoded is the path as stored and sent to the vault.
	Encoded string

	// Decoded is Encoded with percent-encoding removed, for display.
	Decoded string

	// Warnings lists problems with the supplied target. The target is
	// stored regardless.
	Warnings []string
}

// SetTarget resolves raw into a vault path, stores it and saves the settings.
//
// Returns an error wrapping ErrInvalidEncoding, without touching the settings,
// if raw is not valid UTF-8. Returns an error wrapping ErrSettingsNotSaved if
// the settings file cannot be written.
func SetTarget(ctx context.Context, settings *configs.Settings, raw string) (*TargetResult, error) {
	// The stored value must decode back to text for get-target.
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("target %q is not valid UTF-8: %w", raw, kerrors.ErrInvalidEncoding)
	}

	result := &TargetResult{
		Encoded:  target.Resolve(raw),
		Warnings: target.Check(raw),
	}

	settings.SetTargetFile(result.Encoded)
	if err := settings.Save(); err != nil {
		return nil, err
	}

	audit.Log(settings.Dir(), audit.Entry{Operation: audit.OpTarget, Target: result.Encoded})

	decoded, err := target.Decode(result.Encoded)
	if err != nil {
		return nil, err
	}
	result.Decoded = decoded

	return result, nil
}

// GetTarget returns the stored target.
//
// Returns ErrTargetNotSet if no target is stored, or an error wrapping
// ErrInvalidEncoding if it cannot be decoded.
func GetTarget(ctx context.Context, settings *configs.Settings) (*TargetResult, error) {
	encoded, ok := settings.TargetFile()
	if !ok {
		return nil, kerrors.ErrTargetNotSet
	}

	decoded, err := target.Decode(encoded)
	if err != nil {
		return nil, err
	}

	return &TargetResult{Encoded: encoded, Decoded: decoded}, nil
}
