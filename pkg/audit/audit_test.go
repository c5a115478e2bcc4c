package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEvent_New(t *testing.T) {
	event := NewEvent("validate", "bgpd.conf")

	if event.Command != "validate" {
		t.Errorf("Command = %q, want %q", event.Command, "validate")
	}
	if len(event.Files) != 1 || event.Files[0] != "bgpd.conf" {
		t.Errorf("Files = %v", event.Files)
	}
	if event.ID == "" {
		t.Error("ID should not be empty")
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
	if !event.Passed {
		t.Error("a fresh event should default to passed")
	}
}

func TestEvent_Chaining(t *testing.T) {
	event := NewEvent("validate", "bgpd.conf").
		WithCounts(2, 5).
		WithDuration(time.Second)

	if event.Errors != 2 || event.Warnings != 5 {
		t.Errorf("counts = %d/%d", event.Errors, event.Warnings)
	}
	if event.Passed {
		t.Error("Passed should be false with errors")
	}
	if event.Duration != time.Second {
		t.Errorf("Duration = %v", event.Duration)
	}

	clean := NewEvent("analyze", "bgpd.conf", "zebra.conf").WithCounts(0, 3)
	if !clean.Passed {
		t.Error("Passed should be true with warnings only")
	}
	if len(clean.Files) != 2 {
		t.Errorf("Files = %v", clean.Files)
	}
}

func TestFileLogger_LogAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	logger, err := NewFileLogger(path, RotationConfig{})
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer logger.Close()

	events := []*Event{
		NewEvent("validate", "bgpd.conf").WithCounts(1, 0),
		NewEvent("analyze", "bgpd.conf").WithCounts(0, 2),
		NewEvent("validate", "other.conf").WithCounts(0, 0),
	}
	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	all, err := logger.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}

	validates, err := logger.Query(Filter{Command: "validate"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(validates) != 2 {
		t.Errorf("command filter: got %d, want 2", len(validates))
	}

	failures, err := logger.Query(Filter{FailuresOnly: true})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(failures) != 1 || failures[0].Errors != 1 {
		t.Errorf("failures filter: got %v", failures)
	}

	limited, err := logger.Query(Filter{Limit: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit filter: got %d, want 2", len(limited))
	}
	// Limit keeps the most recent entries.
	if limited[1].Files[0] != "other.conf" {
		t.Errorf("limit should keep newest entries, got %v", limited[1].Files)
	}
}

func TestFileLogger_QueryMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	logger, err := NewFileLogger(path, RotationConfig{})
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	logger.Close()
	os.Remove(path)

	events, err := logger.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events from missing file, want 0", len(events))
	}
}

func TestFileLogger_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	logger, err := NewFileLogger(path, RotationConfig{})
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer logger.Close()

	if err := logger.Log(NewEvent("validate", "bgpd.conf")); err != nil {
		t.Fatalf("Log: %v", err)
	}

	// Corrupt the file with a non-JSON line, then append another event.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("opening history: %v", err)
	}
	f.WriteString("not json\n")
	f.Close()

	if err := logger.Log(NewEvent("analyze", "bgpd.conf")); err != nil {
		t.Fatalf("Log: %v", err)
	}

	events, err := logger.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2 with malformed line skipped", len(events))
	}
}

func TestRecordAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	Record(path, NewEvent("validate", "bgpd.conf").WithCounts(0, 1))

	events, err := Query(path, Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", events[0].Warnings)
	}
}

func TestTimeFilter(t *testing.T) {
	now := time.Now()
	old := NewEvent("validate", "a.conf")
	old.Timestamp = now.Add(-48 * time.Hour)
	recent := NewEvent("validate", "b.conf")

	path := filepath.Join(t.TempDir(), "history.jsonl")
	logger, err := NewFileLogger(path, RotationConfig{})
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer logger.Close()

	logger.Log(old)
	logger.Log(recent)

	events, err := logger.Query(Filter{StartTime: now.Add(-24 * time.Hour)})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 || events[0].Files[0] != "b.conf" {
		t.Errorf("time filter: got %v", events)
	}
}
