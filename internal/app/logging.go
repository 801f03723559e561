package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/marquee/internal/config"
)

// newLogger opens the configured log file for appending. The terminal is owned
// by the TUI, so nothing is written to stdout or stderr.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir(), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := newTextLogger(file, cfg.LogLevel)
	return logger, file, nil
}

func newTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(w, opts))
}

func logPath(cfg config.Config) string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	return filepath.Join(cfg.LogDir(), "marquee.log")
}
