package ui

import (
	"strings"
	"time"
)

const logTimeLayout = "2006-01-02 15:04:05"

// formatLogTime shortens slog's RFC 3339 timestamps to local wall-clock time.
// Unparseable values are returned unchanged.
func formatLogTime(ts string, loc *time.Location) string {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	if loc == nil {
		loc = time.Local
	}
	return parsed.In(loc).Format(logTimeLayout)
}

// formatLogLevel normalizes level names; slog writes offsets like "INFO+2"
// for custom levels, which are shown as-is.
func formatLogLevel(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "" {
		return "INFO"
	}
	return level
}
