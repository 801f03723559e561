package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/movies"
	"github.com/five82/marquee/internal/state"
)

// chromeHeight is the header plus footer line.
const chromeHeight = 2

func (m *Model) contentHeight() int {
	return maxInt(m.height-chromeHeight, 1)
}

func (m *Model) initListViewport() {
	m.listViewport = viewport.New(m.width, m.contentHeight())
}

// updateListViewport re-renders the cards into the viewport.
func (m *Model) updateListViewport() {
	m.listViewport.Width = m.width
	m.listViewport.Height = m.contentHeight()
	m.listViewport.SetContent(m.renderCards(m.snapshot.Movies))
}

func (m Model) renderCards(list []movies.Movie) string {
	if len(list) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	cardWidth := maxInt(m.width-2, LayoutMinCardWidth)
	textWidth := maxInt(cardWidth-4, LayoutMinCardWidth/2)

	cards := make([]string, 0, len(list))
	for _, movie := range list {
		var b strings.Builder
		title := styles.CardTitle.Render(truncate(orPlaceholder(movie.Title), textWidth))
		b.WriteString(title)
		b.WriteString("\n")
		meta := "Released " + orPlaceholder(movie.ReleaseDate)
		if movie.ID != "" && !m.compact() {
			meta += "  ·  " + truncate(movie.ID, 32)
		}
		b.WriteString(styles.MutedText.Render(meta))
		if m.showOpeningText && strings.TrimSpace(movie.OpeningText) != "" {
			b.WriteString("\n\n")
			b.WriteString(styles.Text.Width(textWidth).Render(normalizeCrawl(movie.OpeningText)))
		}
		cards = append(cards, styles.Card.Width(cardWidth).Render(b.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// normalizeCrawl collapses the hard line breaks upstream crawls carry so the
// text rewraps to the card width. Blank lines between paragraphs survive.
func normalizeCrawl(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	paragraphs := strings.Split(text, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(paragraphs, "\n\n")
}

// renderContent picks what to show from the snapshot's display state.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := m.contentHeight()
	center := func(s string) string {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, s)
	}

	switch m.snapshot.Display() {
	case state.DisplayLoading:
		return center(m.spinner.View() + " " + styles.Text.Render(state.LoadingText))
	case state.DisplayError:
		return center(styles.DangerText.Render(m.snapshot.Message))
	case state.DisplayList:
		return m.listViewport.View()
	default:
		return center(styles.MutedText.Render(state.EmptyText))
	}
}

// handleListKey scrolls the movie list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.listViewport
	switch {
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
