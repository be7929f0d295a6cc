package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

func TestInitJSONToFile(t *testing.T) {
	captureStderr(t)
	path := filepath.Join(t.TempDir(), "bezier.log")

	Init(Options{Level: "debug", Format: "json", File: path})
	WithComponent("curve").Info("hello", slog.String("k", "v"))
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var last string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		t.Fatal("no log lines written")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", last, err)
	}
	for key, want := range map[string]string{"msg": "hello", "k": "v", "component": "curve", "app": "bezier"} {
		if got, _ := m[key].(string); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestInitTextLevelFilter(t *testing.T) {
	buf := captureStderr(t)

	l := Init(Options{Level: "warn", Format: "text"})
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BEZIER_LOG_LEVEL", "debug")
	t.Setenv("BEZIER_LOG_FORMAT", "json")
	t.Setenv("BEZIER_LOG_SOURCE", "TRUE")
	t.Setenv("BEZIER_LOG_FILE", "/tmp/x.log")

	got := FromEnv()
	want := Options{Level: "debug", Format: "json", AddSource: true, File: "/tmp/x.log"}
	if got != want {
		t.Errorf("FromEnv() = %+v, want %+v", got, want)
	}
}
