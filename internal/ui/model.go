package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/movies"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// Fetcher starts a fetch synchronously and resolves it later, so the loading
// state is visible before any network work begins.
type Fetcher interface {
	Start() uint64
	Resolve(ctx context.Context, gen uint64) error
}

// Submitter posts a new movie.
type Submitter interface {
	SubmitMovie(ctx context.Context, movie movies.NewMovie) error
}

// Options configures the UI.
type Options struct {
	Context         context.Context
	Store           *state.Store
	Fetcher         Fetcher
	Submitter       Submitter
	Logger          *slog.Logger
	ThemeName       string
	ShowOpeningText bool
	PrefsPath       string
	LogFile         string
	ReadURL         string
	WriteURL        string
}

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusOK
	statusFailed
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	fetcher   Fetcher
	submitter Submitter
	logger    *slog.Logger
	prefsPath string
	logFile   string
	readURL   string
	writeURL  string

	updates     <-chan state.Snapshot
	unsubscribe func()

	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	snapshot        state.Snapshot
	listViewport    viewport.Model
	spinner         spinner.Model
	showOpeningText bool

	modal    Modal
	showHelp bool

	showLogs    bool
	logViewport viewport.Model
	logLines    []string
	logErr      error

	status     string
	statusKind statusKind
}

// New creates the model and subscribes it to store changes.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Styles().AccentText

	updates, unsubscribe := store.Subscribe()

	return Model{
		ctx:             ctx,
		store:           store,
		fetcher:         opts.Fetcher,
		submitter:       opts.Submitter,
		logger:          logger,
		prefsPath:       prefsPath,
		logFile:         opts.LogFile,
		readURL:         opts.ReadURL,
		writeURL:        opts.WriteURL,
		updates:         updates,
		unsubscribe:     unsubscribe,
		keys:            DefaultKeyMap(),
		theme:           theme,
		snapshot:        store.Snapshot(),
		spinner:         sp,
		showOpeningText: opts.ShowOpeningText,
	}
}

// Init fetches once on start, the same way the refresh key does.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForSnapshot(m.updates),
		m.startFetch(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initListViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.updateListViewport()
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, waitForSnapshot(m.updates)

	case fetchDoneMsg:
		m.applySnapshot(m.store.Snapshot())
		return m, nil

	case submitMovieMsg:
		return m, m.submit(msg.movie)

	case submitDoneMsg:
		if msg.err != nil {
			m.setStatus(statusFailed, "Add failed: "+submitFailure(msg.err))
		} else {
			m.setStatus(statusOK, fmt.Sprintf("Added %q", msg.title))
		}
		return m, nil

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return state.LoadingText
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	body := m.renderContent()
	if m.showLogs {
		body = m.logViewport.View()
	}
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showLogs {
		if key.Matches(msg, m.keys.Quit) {
			return m, m.quit()
		}
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.startFetch()

	case key.Matches(msg, m.keys.Add):
		m.modal = newAddForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleCrawl):
		m.showOpeningText = !m.showOpeningText
		m.updateListViewport()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = m.theme.Styles().AccentText
		m.updateListViewport()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, m.refreshLogs()

	case key.Matches(msg, m.keys.Escape):
		m.setStatus(statusNone, "")
		return m, nil
	}

	return m.handleListKey(msg)
}

// startFetch enters Loading now and resolves the request in a command.
func (m *Model) startFetch() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	gen := m.fetcher.Start()
	m.snapshot = m.store.Snapshot()
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		err := fetcher.Resolve(ctx, gen)
		return fetchDoneMsg{generation: gen, err: err}
	}
}

func (m *Model) submit(movie movies.NewMovie) tea.Cmd {
	if m.submitter == nil {
		m.setStatus(statusFailed, "Add failed: "+movies.ErrNoWriteEndpoint.Error())
		return nil
	}
	m.setStatus(statusInfo, fmt.Sprintf("Adding %q...", movie.Title))
	ctx, submitter := m.ctx, m.submitter
	return func() tea.Msg {
		err := submitter.SubmitMovie(ctx, movie)
		return submitDoneMsg{title: movie.Title, err: err}
	}
}

// applySnapshot ignores snapshots older than the one on screen. Within one
// generation a Loading snapshot never replaces its outcome.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.Generation < m.snapshot.Generation {
		return
	}
	if snap.Generation == m.snapshot.Generation && snap.Loading() && !m.snapshot.Loading() {
		return
	}
	m.snapshot = snap
	m.updateListViewport()
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, ShowOpeningText: m.showOpeningText}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

func (m Model) quit() tea.Cmd {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return tea.Quit
}

// submitFailure keeps the footer short for the failures users can act on.
func submitFailure(err error) string {
	switch {
	case errors.Is(err, movies.ErrSomethingWentWrong):
		return movies.ErrSomethingWentWrong.Error()
	case errors.Is(err, movies.ErrNoWriteEndpoint):
		return movies.ErrNoWriteEndpoint.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return err.Error()
	}
}

// Messages

type snapshotMsg state.Snapshot

type fetchDoneMsg struct {
	generation uint64
	err        error
}

type submitDoneMsg struct {
	title string
	err   error
}

// Commands

// waitForSnapshot delivers the next store change, including changes made by
// the background refresher.
func waitForSnapshot(updates <-chan state.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
