package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestJSONHandlerWithModuleVersion_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(handler).With(slog.String("module", "ybstats"), slog.String("version", "v1.0.0"))

	logger.Info("snapshot complete", "hosts", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected valid JSON, got error: %v, body: %s", err, buf.String())
	}
	if record["module"] != "ybstats" {
		t.Errorf("expected module=ybstats, got %v", record["module"])
	}
	if record["version"] != "v1.0.0" {
		t.Errorf("expected version=v1.0.0, got %v", record["version"])
	}
	if record["msg"] != "snapshot complete" {
		t.Errorf("expected msg='snapshot complete', got %v", record["msg"])
	}
}

func TestNewStructuredLoggerWithLevel_DebugEnabledOnlyAtDebugLevel(t *testing.T) {
	debugLogger := NewStructuredLoggerWithLevel("ybstats", "v1.0.0", "debug")
	if !debugLogger.Enabled(nil, slog.LevelDebug) { //nolint:staticcheck // nil context is fine for Enabled
		t.Error("expected debug logger to be enabled at debug level")
	}

	infoLogger := NewStructuredLoggerWithLevel("ybstats", "v1.0.0", "info")
	if infoLogger.Enabled(nil, slog.LevelDebug) { //nolint:staticcheck // nil context is fine for Enabled
		t.Error("expected info logger to be disabled at debug level")
	}
}

func TestNewLogLogger(t *testing.T) {
	logger := NewLogLogger(slog.LevelWarn, false)
	if logger == nil {
		t.Fatal("expected non-nil *log.Logger")
	}
}

func TestLevelFromEnv_DefaultsToInfo(t *testing.T) {
	t.Setenv(envLogLevel, "")
	if got := levelFromEnv(); got != slog.LevelInfo {
		t.Errorf("expected default level INFO, got %v", got)
	}
}

func TestLevelFromEnv_Honored(t *testing.T) {
	t.Setenv(envLogLevel, "warn")
	if got := levelFromEnv(); got != slog.LevelWarn {
		t.Errorf("expected level WARN, got %v", got)
	}
}

func TestWithContext_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	child := WithContext(nil, base, slog.String("run_id", "abc123")) //nolint:staticcheck // nil context ok in test
	child.Info("started")

	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("expected run_id in output, got: %s", buf.String())
	}
}
