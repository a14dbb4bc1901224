package cmd

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// startSpinner shows a spinner on stderr while a slow operation runs. It
// stays hidden when stdout is not a terminal or in verbose or debug mode,
// so piped output and tests only see the command's own lines.
// The returned function stops the spinner and must always be called.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if verbose || debug || !isTerminal(os.Stdout) {
		Logger.Infof("%s", message)
		return s, func() {}
	}

	Logger.Debugf("Starting spinner with message: %s", message)
	s.Start()

	return s, func() {
		s.Stop()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
