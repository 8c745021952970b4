// Package tui is the terminal movie browser. All state changes happen in
// Update; fetches run as commands and report back as messages.
package tui

import (
	"context"
	"slices"
	"strconv"

	"movees-db/internal/data/entity"
	"movees-db/internal/usecase"
	"movees-db/internal/viewstate"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	chromeHeight   = 9
	minTableHeight = 3
)

// moviesLoadedMsg carries the catalogue snapshot taken after a refresh.
type moviesLoadedMsg struct {
	Seq     uint64
	Movies  []entity.Movie
	Outcome usecase.RefreshOutcome
}

type Model struct {
	ctx     context.Context
	fetch   usecase.FetchService
	reducer viewstate.Reducer
	appName string
	log     *zap.Logger

	state    viewstate.State
	movies   []entity.Movie
	page     usecase.Page
	seq      uint64
	inflight int

	keys      keyMap
	search    textinput.Model
	table     table.Model
	spinner   spinner.Model
	paginator paginator.Model
	help      help.Model
	styles    styles

	width  int
	height int
}

func New(ctx context.Context, fetch usecase.FetchService, reducer viewstate.Reducer, appName string, log *zap.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search…"
	search.Prompt = "🔍 "
	search.CharLimit = 100
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Line

	pg := paginator.New()
	pg.Type = paginator.Arabic

	m := Model{
		ctx:       ctx,
		fetch:     fetch,
		reducer:   reducer,
		appName:   appName,
		log:       log.With(zap.String("handler", "tui")),
		state:     viewstate.Initial(reducer.DefaultPageSize),
		keys:      defaultKeyMap(),
		search:    search,
		table:     table.New(table.WithColumns(columns(80)), table.WithFocused(true)),
		spinner:   sp,
		paginator: pg,
		help:      help.New(),
		inflight:  1,
		width:     80,
		height:    24,
	}
	m.applyTheme()
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return func() tea.Msg {
		out := fetch.Refresh(ctx)
		snap := fetch.Snapshot()
		return moviesLoadedMsg{Seq: snap.Seq, Movies: snap.Movies, Outcome: out}
	}
}

func (m Model) Loading() bool {
	return m.inflight > 0
}

func (m Model) State() viewstate.State {
	return m.state
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.sync()
		return m, nil

	case moviesLoadedMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		if msg.Seq < m.seq {
			m.log.Debug("Ignoring stale movie snapshot",
				zap.Uint64("seq", msg.Seq),
				zap.Uint64("current", m.seq),
			)
			return m, nil
		}
		m.seq = msg.Seq
		m.movies = msg.Movies
		m.sync()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Blur):
		m.search.Blur()
		m.table.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.state.SearchTerm {
		m.dispatch(viewstate.SearchTermChanged{Term: term})
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.table.Blur()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Prev):
		if m.page.HasPrevious() {
			m.dispatch(viewstate.PageChanged{Page: m.state.Page - 1})
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		if m.page.HasNext() {
			m.dispatch(viewstate.PageChanged{Page: m.state.Page + 1})
		}
		return m, nil
	case key.Matches(msg, m.keys.MoreRows):
		m.dispatch(viewstate.RowsPerPageChanged{Raw: strconv.Itoa(stepRows(m.state.PageSize, 1))})
		return m, nil
	case key.Matches(msg, m.keys.LessRows):
		m.dispatch(viewstate.RowsPerPageChanged{Raw: strconv.Itoa(stepRows(m.state.PageSize, -1))})
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.dispatch(viewstate.ThemeToggled{Dark: !m.state.Theme.IsDark()})
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.inflight++
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// dispatch runs the reducer and re-derives everything shown on screen.
func (m *Model) dispatch(e viewstate.Event) {
	prevTheme := m.state.Theme
	m.state = m.reducer.Reduce(m.state, e)
	if m.state.Theme != prevTheme {
		m.applyTheme()
	}
	m.sync()
}

func (m *Model) applyTheme() {
	m.styles = stylesFor(m.state.Theme)
	m.table.SetStyles(m.styles.Table)
	m.spinner.Style = m.styles.Spinner
}

func (m *Model) sync() {
	m.page = usecase.DerivePage(m.movies, m.state)

	m.table.SetColumns(columns(m.width))
	m.table.SetRows(rowsFor(m.page))
	m.table.SetHeight(max(m.height-chromeHeight, minTableHeight))
	if cursor := m.table.Cursor(); cursor >= len(m.page.Items) || cursor < 0 {
		m.table.SetCursor(0)
	}

	m.paginator.PerPage = m.state.PageSize
	m.paginator.SetTotalPages(m.page.Total)
	m.paginator.Page = min(m.state.Page, max(m.paginator.TotalPages-1, 0))
}

// stepRows moves to the next or previous rows-per-page option.
func stepRows(current, dir int) int {
	opts := viewstate.RowsPerPageOptions
	idx := slices.Index(opts, current)
	if idx < 0 {
		idx = slices.Index(opts, viewstate.DefaultPageSize)
	}
	idx = min(max(idx+dir, 0), len(opts)-1)
	return opts[idx]
}
