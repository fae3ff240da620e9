package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "arkanoid",
		Level:           level,
	})
}

// logLevel maps the --verbose flag to a log level.
func logLevel() log.Level {
	if flagVerbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// openLogOutput returns the writer for log output: the --log-file if set,
// otherwise fallback. The returned close function is always non-nil.
func openLogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
