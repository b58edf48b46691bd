/*
PURPOSE:
  Provides a structured logger for cmdbench.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - Needs Debug/Info/Warn/Error levels selectable from flags or env.
  - Must write to stderr: in verbose mode stdout belongs to the child
    processes being measured.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - Setup() rejects unknown levels and formats.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - None.
*/

package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvLogLevel  = "CMDBENCH_LOG_LEVEL"
	EnvLogFormat = "CMDBENCH_LOG_FORMAT"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// ParseLevel maps DEBUG, INFO, WARN or ERROR (any case) to a slog level.
// An empty string means INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Setup builds a text or json handler writing to w and installs it as Logger.
// Empty level or format fall back to the environment, then to INFO / text.
func Setup(level, format string, w io.Writer) (*slog.Logger, error) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	if format == "" {
		format = os.Getenv(EnvLogFormat)
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	l := slog.New(handler)
	SetLogger(l)
	return l, nil
}
