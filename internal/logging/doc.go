// Package logger provides levelled logging for obslog commands.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two persistent flags on the root command:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to stderr.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Sending %d bytes", len(body))
//
// The root command creates the logger in its PersistentPreRun and
// subcommands read it from the package-level Logger variable.
package logger
