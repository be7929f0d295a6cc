// Package log configures the slog logger used by the demo binary.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Values can be provided directly or via environment variables:
//   - BEZIER_LOG_LEVEL=debug|info|warn|error
//   - BEZIER_LOG_FORMAT=text|json
//   - BEZIER_LOG_FILE=<path> (adds a rotated JSON log file)
//   - BEZIER_LOG_SOURCE=true|false
type Options struct {
	Level     string
	Format    string // "text" or "json"
	AddSource bool
	File      string
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	fileWriter    *lj.Logger

	// stderr is swapped in tests.
	stderr io.Writer = os.Stderr
)

// L returns the application logger, initializing it from the environment
// on first use.
func L() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Init configures the application logger and installs it as slog.Default.
func Init(opts Options) *slog.Logger {
	lvl := parseLevel(opts.Level)
	hopts := &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(stderr, hopts)
	} else {
		console = slog.NewTextHandler(stderr, hopts)
	}
	handlers := []slog.Handler{console}

	mu.Lock()
	defer mu.Unlock()

	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
	if f := strings.TrimSpace(opts.File); f != "" {
		fileWriter = &lj.Logger{Filename: f, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(fileWriter, hopts))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = &multi{hs: handlers}
	}
	defaultLogger = slog.New(h).With(slog.String("app", "bezier"))
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// Close flushes and closes the rotating log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// FromEnv builds Options from environment variables.
func FromEnv() Options {
	return Options{
		Level:     getenv("BEZIER_LOG_LEVEL", "info"),
		Format:    getenv("BEZIER_LOG_FORMAT", "text"),
		AddSource: strings.EqualFold(getenv("BEZIER_LOG_SOURCE", "false"), "true"),
		File:      os.Getenv("BEZIER_LOG_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns a logger with the component attribute pre-set.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multi fans out log records to multiple handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
