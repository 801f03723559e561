package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/state"
)

// renderHeader shows the logo, endpoint and fetch state on one line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []string{bg.Render(" MARQUEE", styles.Logo)}
	if !m.compact() && m.readURL != "" {
		left = append(left, bg.Render(truncateMiddle(m.readURL, m.width/2), styles.MutedText))
	}
	if m.writeURL == "" && !m.compact() {
		left = append(left, bg.Render("read-only", styles.FaintText))
	}
	if m.showLogs {
		left = append(left, bg.Render("log", styles.WarningText))
	}
	right := bg.Render(m.headerState()+" ", m.headerStateStyle())
	return bg.Bar(bg.Join(left, "  "), right, m.width)
}

func (m Model) headerState() string {
	snap := m.snapshot
	switch snap.Phase {
	case state.PhaseLoading:
		return "fetching"
	case state.PhaseError:
		return "failed " + m.since(snap.UpdatedAt)
	case state.PhaseSuccess:
		return fmt.Sprintf("%d movies · %s", len(snap.Movies), m.since(snap.UpdatedAt))
	default:
		return "idle"
	}
}

func (m Model) headerStateStyle() lipgloss.Style {
	styles := m.theme.Styles()
	switch m.snapshot.Phase {
	case state.PhaseLoading:
		return styles.InfoText
	case state.PhaseError:
		return styles.DangerText
	case state.PhaseSuccess:
		return styles.SuccessText
	default:
		return styles.MutedText
	}
}

func (m Model) since(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := humanizeDuration(time.Since(t))
	if d == "now" {
		return "just now"
	}
	return d + " ago"
}

// renderFooter shows the latest submission outcome, or key hints when there
// is nothing to report.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if m.status != "" {
		style := styles.MutedText
		switch m.statusKind {
		case statusOK:
			style = styles.SuccessText
		case statusFailed:
			style = styles.DangerText
		case statusInfo:
			style = styles.InfoText
		}
		return bg.FillLine(bg.Render(" "+m.status, style), m.width)
	}

	bindings := m.keys.ShortHelp()
	if m.showLogs {
		bindings = []key.Binding{m.keys.Refresh, m.keys.Escape}
	}
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.Key)+bg.Render(" "+strings.ToLower(h.Desc), styles.MutedText))
	}
	return bg.FillLine(bg.Render(" ", styles.MutedText)+bg.Join(hints, "  "), m.width)
}
