package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "obslog")

	Log(dir, Entry{Operation: OpKey})

	if _, err := os.Stat(LogPath(dir)); os.IsNotExist(err) {
		t.Fatalf("History file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	dir := t.TempDir()

	Log(dir, Entry{Operation: OpKey})
	Log(dir, Entry{Operation: OpTarget, Target: "/vault/inbox"})
	Log(dir, Entry{Operation: OpLog, Target: "/vault/inbox", Bytes: 5, Status: 204})

	entries, err := ReadEntries(dir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	wantOps := []string{OpKey, OpTarget, OpLog}
	for i, op := range wantOps {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
		if entries[i].ID == "" {
			t.Errorf("Entry %d: expected an id", i)
		}
		if entries[i].Timestamp == "" {
			t.Errorf("Entry %d: expected a timestamp", i)
		}
	}
	if entries[2].Status != 204 || entries[2].Bytes != 5 {
		t.Errorf("Unexpected log entry: %+v", entries[2])
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	dir := t.TempDir()
	Log(dir, Entry{Operation: OpKey})

	entries, err := ReadEntries(dir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	ts := entries[0].Timestamp
	if !strings.HasSuffix(ts, "Z") || !strings.Contains(ts, ".") || len(ts) != len("2006-01-02T15:04:05.000000Z") {
		t.Errorf("Unexpected timestamp format: %q", ts)
	}
}

func TestLog_EmptyDirIsNoop(t *testing.T) {
	Log("", Entry{Operation: OpKey})
}

func TestReadEntries_Missing(t *testing.T) {
	entries, err := ReadEntries(t.TempDir())
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformed(t *testing.T) {
	data := []byte(`{"id":"1","ts":"2024-01-01T00:00:00.000000Z","op":"key"}
not json
{"id":"2","ts":"2024-01-01T00:00:01.000000Z","op":"log","target":"/periodic/daily/"}
{"id":"3","op":`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Target != "/periodic/daily/" {
		t.Errorf("Unexpected target: %q", entries[1].Target)
	}
}
