package bezier

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugLogInterval(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene(t, nil)
	s.log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.SetDebugMode(true)

	s.frame = 1
	s.debugLog()
	if buf.Len() != 0 {
		t.Fatalf("logged off-interval: %q", buf.String())
	}

	s.frame = debugLogInterval
	s.debugLog()
	out := buf.String()
	if !strings.Contains(out, "frame stats") || !strings.Contains(out, "drag=none") {
		t.Errorf("unexpected stats line: %q", out)
	}
}

func TestDebugLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene(t, nil)
	s.log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.frame = debugLogInterval
	s.debugLog()
	if buf.Len() != 0 {
		t.Errorf("logged with debug mode off: %q", buf.String())
	}
}
