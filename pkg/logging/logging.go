package logging

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
)

const envLogLevel = "LOG_LEVEL"

// ParseLevel parses a case-insensitive log level name into a slog.Level.
// Unrecognized values fall back to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "INFO":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv resolves the LOG_LEVEL environment variable to a slog.Level,
// defaulting to INFO when unset or unrecognized.
func levelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(envLogLevel))
}

// NewStructuredLogger builds a JSON-structured slog.Logger writing to stderr,
// tagging every record with the given module and version. Debug-level
// records include source file/line/function. The level is read from the
// LOG_LEVEL environment variable.
func NewStructuredLogger(module, version string) *slog.Logger {
	return NewStructuredLoggerWithLevel(module, version, levelFromEnv().String())
}

// NewStructuredLoggerWithLevel is like NewStructuredLogger but takes an
// explicit level string (case-insensitive: debug/info/warn/error) instead of
// reading LOG_LEVEL.
func NewStructuredLoggerWithLevel(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	logger := slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
	return logger
}

// SetDefaultStructuredLogger installs a structured logger built by
// NewStructuredLogger as the slog default, using the LOG_LEVEL environment
// variable to pick the level.
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(NewStructuredLogger(module, version))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger with an
// explicit level as the slog default, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLoggerWithLevel(module, version, level))
}

// NewLogLogger builds a standard library *log.Logger backed by a new JSON
// slog handler on stderr, for handing to APIs that only accept one (e.g.
// http.Server's ErrorLog); it does not use the default slog.Logger. Records
// below the given level are discarded. When withSource is true, each record
// carries a source location.
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})
	return slog.NewLogLogger(handler, level)
}

// WithContext returns a child logger with additional attributes, for
// threading request-scoped or run-scoped identifiers (such as a run ID)
// through a call chain without reconstructing the base logger each time.
func WithContext(ctx context.Context, logger *slog.Logger, args ...any) *slog.Logger {
	_ = ctx
	return logger.With(args...)
}
