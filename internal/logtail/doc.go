// Package logtail reads the tail of marquee's log file for the log overlay.
//
// Read keeps a ring buffer of the last N lines so a large log is scanned once
// with O(N) memory. A missing file is not an error; the log may not have been
// written yet.
//
// Parse splits lines produced by slog's text handler into time, level and
// message so the UI can color them. Lines in other formats are passed through
// untouched in Entry.Raw.
package logtail
