// Package errors provides typed error values for obslog.
//
// Using sentinel errors allows callers to handle specific error conditions
// with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Settings errors: ErrNoAPIKey, ErrTargetNotSet, ErrSettingsNotSaved
//   - Target errors: ErrInvalidEncoding
//   - Transport errors: ErrRequestFailed
//
// # Usage
//
// Return errors from internal packages:
//
//	if !ok {
//	    return nil, errors.ErrNoAPIKey
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Log(ctx, settings, opts)
//	if errors.Is(err, kerrors.ErrNoAPIKey) {
//	    // Show the remediation hint
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("saving settings to %s: %w", path, errors.ErrSettingsNotSaved)
package errors
