package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/obslog/internal/audit"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool
}

// HistoryResult contains the outcome of a history operation.
type HistoryResult struct {
	Entries []audit.Entry
}

// History reads the operation history kept in dir.
func History(ctx context.Context, dir string, opts HistoryOptions) (*HistoryResult, error) {
	entries, err := audit.ReadEntries(dir)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	if opts.Reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		if opts.Reverse {
			// Reversed: the first N are the most recent.
			entries = entries[:opts.Limit]
		} else {
			entries = entries[len(entries)-opts.Limit:]
		}
	}

	return &HistoryResult{Entries: entries}, nil
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS format.
func FormatDateTime(ts string) string {
	t, err := time.Parse("2006-01-02T15:04:05.000000Z", ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	if err != nil {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails formats the operation specific part of a history line.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case audit.OpLog:
		return fmt.Sprintf("%s (%d bytes, status %d)", e.Target, e.Bytes, e.Status)
	case audit.OpTarget:
		return e.Target
	default:
		return ""
	}
}
