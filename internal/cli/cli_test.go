package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"workwatch/internal/store"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v (stderr: %s)", args, err, errOut.String())
	}
	return out.String()
}

func TestHistoryEmpty(t *testing.T) {
	t.Setenv("WORKWATCH_DIR", t.TempDir())

	out := runCmd(t, "history")
	if !strings.Contains(out, "No sessions recorded yet.") {
		t.Fatalf("output = %q", out)
	}
}

func TestHistoryListsSessions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKWATCH_DIR", dir)

	s, err := store.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	start := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	if err := s.Record(store.Session{
		StartedAt: start,
		EndedAt:   start.Add(125 * time.Second),
		Seconds:   125,
		Logs:      []string{"standup"},
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	out := runCmd(t, "history")
	if !strings.Contains(out, "2 Minutes, 5 Seconds") {
		t.Errorf("output missing verbose duration: %q", out)
	}
	if !strings.Contains(out, "standup") {
		t.Errorf("output missing log entry: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCmd(t, "version")
	if !strings.Contains(out, "workwatch ") {
		t.Fatalf("output = %q", out)
	}
}
