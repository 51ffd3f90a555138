package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journey.log")
	lb, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	lb.Info("first")
	lb.Warn("second")
	lb.Error("third")

	lines := lb.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "first") {
		t.Fatalf("unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Fatalf("unexpected last line: %s", lines[2])
	}
}

func TestTailReturnsMostRecent(t *testing.T) {
	lb, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 20; i++ {
		lb.Info("entry %d", i)
	}
	lines := lb.Tail(5)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[4], "entry 19") {
		t.Fatalf("tail must end with the newest entry: %s", lines[4])
	}
}

func TestTailMissingFile(t *testing.T) {
	lb, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if lines := lb.Tail(5); lines != nil {
		t.Fatalf("expected nil for missing file, got %v", lines)
	}
}

func TestActionShape(t *testing.T) {
	lb, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	lb.Action("flowers", "added", "abc123")
	lb.Action("flowers", "closed", "")
	lines := lb.Tail(2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "flowers · added abc123") {
		t.Fatalf("unexpected action line: %s", lines[0])
	}
	if !strings.Contains(lines[1], "flowers · closed") {
		t.Fatalf("unexpected action line: %s", lines[1])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var lb *Logbook
	lb.Info("ignored")
	lb.Action("demo", "noop", "")
	if lb.Tail(3) != nil {
		t.Fatalf("nil logbook must tail nothing")
	}
	if lb.Path() != "" {
		t.Fatalf("nil logbook must have empty path")
	}
}
