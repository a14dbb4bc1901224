// Package vault sends log entries to an Obsidian vault through the Local
// REST API plugin.
//
// Each call to Append is a single POST of text/markdown to the plugin's
// plain HTTP port with a bearer token. There is no retry: a timeout or
// connection failure is returned to the caller wrapped in
// errors.ErrRequestFailed.
package vault
