package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/obslog/internal/configs"
	"github.com/google/uuid"
)

// Operation names recorded in the history.
const (
	OpLog    = "log"
	OpKey    = "key"
	OpTarget = "target"
)

// Entry represents a single history entry. The API key is never recorded.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`

	Target string `json:"target,omitempty"` // Encoded target path, for log and target.
	Bytes  int    `json:"bytes,omitempty"`  // Body size, for log.
	Status int    `json:"status,omitempty"` // HTTP status, for log.
}

// Log appends an entry to the history in dir. Failures are ignored;
// an operation never fails because its history could not be written.
func Log(dir string, entry Entry) {
	if dir == "" {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return
	}

	f, err := os.OpenFile(LogPath(dir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the history file inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, configs.HistoryFileName)
}

// ReadEntries reads all entries from the history in dir.
// Returns an empty slice if the history doesn't exist.
func ReadEntries(dir string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data. Malformed lines are skipped, which
// covers a partially written final line.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
