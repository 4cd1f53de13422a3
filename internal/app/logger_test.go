package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/lumenprint/calendarshop-backend/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"  warn  ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if slog.Default().Handler() != logger.Handler() {
		t.Error("returned logger was not installed as the slog default")
	}
}

func TestLoggerOutput_JSONOmitsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handlerFor(&buf, config.LogConfig{Level: "info", Format: "json"}))
	logger.Info("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json handler emitted invalid JSON: %v", err)
	}
	if rec["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", rec["msg"])
	}
	if _, ok := rec["source"]; ok {
		t.Error("json output should not carry source locations")
	}
}

func TestLoggerOutput_TextIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handlerFor(&buf, config.LogConfig{Level: "debug", Format: "text"}))
	logger.Debug("hello")

	if out := buf.String(); !strings.Contains(out, "source=") {
		t.Errorf("text output should carry the source location, got %q", out)
	}
}

func TestLoggerOutput_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handlerFor(&buf, config.LogConfig{Level: "warn", Format: "json"}))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record should be suppressed at warn level, got %q", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn record should pass the warn level filter")
	}
}

// handlerFor mirrors the handler selection of NewLogger but writes to buf so
// tests can inspect the records.
func handlerFor(buf *bytes.Buffer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(buf, opts)
	}
	return slog.NewTextHandler(buf, opts)
}
