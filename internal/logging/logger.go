// Package logging builds the application logger on top of charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"todo-list/internal/config"
)

// Prefix is attached to every log line.
const Prefix = "todo"

// New creates a logger writing to w using the configured level and format.
// TODO_DEBUG overrides the configured level.
func New(cfg config.LoggingConfig, w io.Writer) *log.Logger {
	level := ParseLevel(cfg.Level)
	if DebugEnabled() {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(cfg.Format),
		ReportTimestamp: cfg.Format != "text" && cfg.Format != "",
		Prefix:          Prefix,
	})
}

// Open creates a logger for cfg. When cfg.File is set, logs are appended to
// that file and the returned closer releases it; otherwise logs go to fallback.
func Open(cfg config.LoggingConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		return New(cfg, fallback), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	return New(cfg, f), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
