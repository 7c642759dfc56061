// Package logging builds the slog.Logger used by the easydb command.
//
// Output is JSON by default and text on request; every entry carries the
// service name and build version.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects level, format and destination.
//
//	level:  debug, info, warn, error
//	format: json, text
//	output: stdout, stderr
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`

	// Writer overrides Output when set.
	Writer io.Writer `yaml:"-"`
}

// New creates a logger for cfg with service and version attributes.
func New(cfg Config, version string) *slog.Logger {
	var handler slog.Handler

	output := cfg.Writer
	if output == nil {
		output = os.Stdout
		if strings.EqualFold(cfg.Output, "stderr") {
			output = os.Stderr
		}
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	return slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", "easydb"),
		slog.String("version", version),
	}))
}

// ParseLevel converts debug, info, warn or error to a slog.Level.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
