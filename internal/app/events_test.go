package app

import (
	"bytes"
	"strings"
	"testing"

	"alchemy/internal/alchemy"
	"alchemy/internal/logging"
)

func TestEventLogReportsDiscoveries(t *testing.T) {
	var buf bytes.Buffer
	events := newEventLog(logging.NewWithWriter("info", &buf))
	store := alchemy.NewStore(alchemy.DefaultConfig())
	store.SetListener(events)

	if _, err := store.SetNewPosition(0, 400, 275); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg := events.takeLatest(); msg != "discovered STEAM!" {
		t.Fatalf("got status %q", msg)
	}
	if msg := events.takeLatest(); msg != "" {
		t.Fatalf("status should clear after read, got %q", msg)
	}
	if !strings.Contains(buf.String(), "discovered: type=STEAM") {
		t.Fatalf("expected discovery in log, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "[DEBUG]") {
		t.Fatalf("debug events leaked at info level: %q", buf.String())
	}
}
