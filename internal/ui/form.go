package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/movies"
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal, a command, and whether the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const (
	fieldTitle = iota
	fieldOpeningText
	fieldReleaseDate
	fieldCount
)

const formWidth = 60

// submitMovieMsg carries the record built by the add form.
type submitMovieMsg struct {
	movie movies.NewMovie
}

// addForm collects a new movie. Values are sent exactly as typed.
type addForm struct {
	title       textinput.Model
	openingText textarea.Model
	releaseDate textinput.Model
	focus       int
}

func newAddForm() *addForm {
	title := textinput.New()
	title.Placeholder = "A New Hope"
	title.CharLimit = 200
	title.Width = formWidth - 8

	opening := textarea.New()
	opening.Placeholder = "It is a period of civil war..."
	opening.ShowLineNumbers = false
	opening.CharLimit = 4000
	opening.SetWidth(formWidth - 6)
	opening.SetHeight(5)

	release := textinput.New()
	release.Placeholder = "1977-05-25"
	release.CharLimit = 40
	release.Width = formWidth - 8

	f := &addForm{
		title:       title,
		openingText: opening,
		releaseDate: release,
	}
	f.setFocus(fieldTitle)
	return f
}

func (f *addForm) setFocus(field int) {
	f.focus = (field + fieldCount) % fieldCount
	f.title.Blur()
	f.openingText.Blur()
	f.releaseDate.Blur()
	switch f.focus {
	case fieldTitle:
		f.title.Focus()
	case fieldOpeningText:
		f.openingText.Focus()
	case fieldReleaseDate:
		f.releaseDate.Focus()
	}
}

// Movie returns the record as currently entered.
func (f *addForm) Movie() movies.NewMovie {
	return movies.NewMovie{
		Title:       f.title.Value(),
		OpeningText: f.openingText.Value(),
		ReleaseDate: f.releaseDate.Value(),
	}
}

func (f *addForm) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Escape):
			return f, nil, true
		case key.Matches(keyMsg, keys.Submit):
			movie := f.Movie()
			return f, func() tea.Msg { return submitMovieMsg{movie: movie} }, true
		case key.Matches(keyMsg, keys.NextField):
			f.setFocus(f.focus + 1)
			return f, nil, false
		case key.Matches(keyMsg, keys.PrevField):
			f.setFocus(f.focus - 1)
			return f, nil, false
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldOpeningText:
		f.openingText, cmd = f.openingText.Update(msg)
	case fieldReleaseDate:
		f.releaseDate, cmd = f.releaseDate.Update(msg)
	}
	return f, cmd, false
}

func (f *addForm) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	label := func(field int, text string) string {
		if f.focus == field {
			return styles.AccentText.Bold(true).Render("› " + text)
		}
		return styles.MutedText.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Add Movie"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", formWidth-6)))
	b.WriteString("\n\n")

	b.WriteString(label(fieldTitle, "Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldOpeningText, "Opening Text"))
	b.WriteString("\n")
	b.WriteString(f.openingText.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldReleaseDate, "Release Date"))
	b.WriteString("\n")
	b.WriteString(f.releaseDate.View())
	b.WriteString("\n\n")

	b.WriteString(styles.FaintText.Render("tab next field • ctrl+s add • esc cancel"))

	box := styles.Modal.Width(formWidth).Render(b.String())
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
