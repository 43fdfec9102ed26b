package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a charmbracelet/log logger for use as a slog handler.
// Timestamps are formatted as "HH:MM:SS.ms". Unknown level names fall back
// to warn.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
}
