package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a leveled logger writing to w.
func NewLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// FileLogger is used by frontends that own the terminal. Logs go to path,
// or nowhere when path is empty. The returned closer must be called on exit.
func FileLogger(path, level, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return NewLogger(io.Discard, level, prefix), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, level, prefix), f, nil
}
