// Package configs manages obslog's persisted user settings.
//
// Settings live in a flat TOML file, by default
// <user config dir>/obslog/settings.toml:
//
//	api_key = "..."
//	target_file = "/periodic/daily/"
//
// Set OBSLOG_CONFIG_DIR to use another directory.
//
// # Store
//
// Store is an opaque string-to-string map with Get, Set and Save. Save writes
// a temporary file and renames it over the old one.
//
// # Settings
//
// LoadSettings is called once per invocation. It never fails: a corrupt or
// unreadable file is treated as empty, and the target defaults to the daily
// periodic note. The resulting *Settings is passed explicitly to each
// workflow; mutating workflows call Save before returning.
package configs
