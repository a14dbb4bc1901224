// Package workflows implements obslog's commands independent of the CLI.
//
// The cmd/ package parses arguments, loads the settings once, calls one
// workflow and formats its result. Workflows receive the *configs.Settings
// explicitly and save it themselves when they change it.
//
// # Available Workflows
//
//   - Log: append text to the stored target note
//   - SetKey: store the API key
//   - SetTarget: resolve and store a target
//   - GetTarget: read and decode the stored target
//   - History: read the local operation history
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package so the CLI
// can choose between an informational message (ErrNoAPIKey) and a fatal
// exit (ErrSettingsNotSaved, ErrInvalidEncoding, ErrRequestFailed):
//
//	result, err := workflows.Log(ctx, settings, opts)
//	if errors.Is(err, kerrors.ErrNoAPIKey) {
//	    // Tell the user how to set a key and exit normally
//	}
package workflows
