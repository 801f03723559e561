package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// Read returns the last maxLines lines of the file at path. A missing file
// yields no lines and no error. maxLines <= 0 returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := Tail(file, maxLines)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Tail scans r once and keeps only the trailing maxLines lines.
func Tail(r io.Reader, maxLines int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufferSize), maxLineSize)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		return all, scanner.Err()
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is a log line split into the fields the log overlay highlights.
type Entry struct {
	Time    string
	Level   string
	Message string
	Rest    string
	Raw     string
}

// Parse splits a line written by slog's text handler
// (time=... level=INFO msg="..." key=value). Lines in any other format come
// back with only Raw and Rest set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	remaining := line
	for _, key := range []string{"time", "level", "msg"} {
		value, rest, ok := cutField(remaining, key)
		if !ok {
			break
		}
		switch key {
		case "time":
			entry.Time = value
		case "level":
			entry.Level = strings.ToUpper(value)
		case "msg":
			entry.Message = value
		}
		remaining = rest
	}
	entry.Rest = strings.TrimSpace(remaining)
	return entry
}

func cutField(s, key string) (value, rest string, ok bool) {
	s = strings.TrimLeft(s, " ")
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return "", s, false
	}
	s = s[len(prefix):]
	if strings.HasPrefix(s, `"`) {
		end := closingQuote(s)
		if end < 0 {
			return s[1:], "", true
		}
		return strings.ReplaceAll(s[1:end], `\"`, `"`), s[end+1:], true
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i:], true
	}
	return s, "", true
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
