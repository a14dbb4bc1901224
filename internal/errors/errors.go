package errors

import "errors"

// Settings errors indicate issues with the persisted configuration.
var (
	// ErrNoAPIKey indicates no API key has been stored yet.
	ErrNoAPIKey = errors.New("no api key set")

	// ErrTargetNotSet indicates the settings hold no target file.
	ErrTargetNotSet = errors.New("target file not set")

	// ErrSettingsNotSaved indicates the settings file could not be written.
	ErrSettingsNotSaved = errors.New("settings could not be saved")
)

// Target errors indicate issues with a stored or supplied target path.
var (
	// ErrInvalidEncoding indicates a stored path is not valid percent-encoded UTF-8.
	ErrInvalidEncoding = errors.New("invalid percent-encoding")
)

// Transport errors indicate failures talking to the vault.
var (
	// ErrRequestFailed indicates the request to the vault did not complete.
	// Timeouts are reported with this error as well.
	ErrRequestFailed = errors.New("request to vault failed")
)
