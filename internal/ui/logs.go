package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/logtail"
)

type logLinesMsg struct {
	lines []string
	err   error
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width, m.contentHeight())
}

// updateLogViewport re-renders the log lines and keeps the newest in view.
func (m *Model) updateLogViewport() {
	m.logViewport.Width = m.width
	m.logViewport.Height = m.contentHeight()
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render("Log unavailable: " + m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		return styles.MutedText.Render("Log is empty: " + m.logFile)
	}
	rendered := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		rendered = append(rendered, m.colorizeLogLine(line))
	}
	return strings.Join(rendered, "\n")
}

func (m Model) colorizeLogLine(line string) string {
	styles := m.theme.Styles()
	entry := logtail.Parse(line)
	if entry.Level == "" {
		return styles.Text.Render(entry.Raw)
	}
	parts := make([]string, 0, 4)
	if ts := formatLogTime(entry.Time, nil); ts != "" {
		parts = append(parts, styles.FaintText.Render(ts))
	}
	level := formatLogLevel(entry.Level)
	parts = append(parts, styles.LevelStyle(level).Render(level))
	if entry.Message != "" {
		parts = append(parts, styles.Text.Render(entry.Message))
	}
	if entry.Rest != "" {
		parts = append(parts, styles.MutedText.Render(entry.Rest))
	}
	return strings.Join(parts, " ")
}

// refreshLogs reads the tail of the log file off the event loop.
func (m Model) refreshLogs() tea.Cmd {
	path := m.logFile
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogLineLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.logViewport
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshLogs()
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	case key.Matches(msg, m.keys.PageDown):
		vp.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		vp.PageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfPageUp()
	}
	return m, nil
}
