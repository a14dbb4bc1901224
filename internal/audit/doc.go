// Package audit keeps a local history of obslog operations.
//
// Every successful log, key and target command appends one entry to a JSON
// Lines file next to the settings file:
//
//	<settings dir>/history.jsonl
//
// Each entry contains an id, a UTC timestamp with microseconds, the
// operation name and, where relevant, the encoded target, the size of the
// logged text and the HTTP status returned by the vault. Neither the API key
// nor the logged text is written.
//
// # Failure Handling
//
// History is best-effort. If writing fails the operation still succeeds.
// ReadEntries skips malformed lines to tolerate partial writes.
package audit
