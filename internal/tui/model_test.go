package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"movees-db/internal/data/entity"
	"movees-db/internal/data/repository"
	"movees-db/internal/usecase"
	"movees-db/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetch struct {
	refreshes int
	snap      repository.Snapshot
}

func (f *fakeFetch) Refresh(ctx context.Context) usecase.RefreshOutcome {
	f.refreshes++
	return usecase.RefreshOutcome{Status: usecase.RefreshApplied, Count: len(f.snap.Movies), Seq: f.snap.Seq}
}

func (f *fakeFetch) Snapshot() repository.Snapshot {
	return f.snap
}

func (f *fakeFetch) Run(ctx context.Context, interval time.Duration) {}

func catalogOf(n int) []entity.Movie {
	out := make([]entity.Movie, n)
	for i := range out {
		out[i] = entity.Movie{
			Title:       fmt.Sprintf("Movie %03d", i),
			VoteAverage: 7.5,
			Genres:      []entity.Genre{{Name: "Drama"}},
		}
	}
	return out
}

func newTestModel(fetch *fakeFetch) Model {
	return New(context.Background(), fetch, viewstate.DefaultReducer, "Movees DB", zap.NewNop())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, m Model, n int) Model {
	t.Helper()
	m, _ = update(t, m, moviesLoadedMsg{Seq: 1, Movies: catalogOf(n)})
	return m
}

func TestNewStartsLoading(t *testing.T) {
	m := newTestModel(&fakeFetch{})

	assert.True(t, m.Loading())
	assert.Equal(t, viewstate.Initial(25), m.State())
	assert.Contains(t, m.View(), "Loading…")
	assert.NotNil(t, m.Init())
}

func TestRefreshCmdReportsSnapshot(t *testing.T) {
	fetch := &fakeFetch{snap: repository.Snapshot{Movies: catalogOf(3), Seq: 4}}
	m := newTestModel(fetch)

	msg, ok := m.refreshCmd()().(moviesLoadedMsg)

	require.True(t, ok)
	assert.Equal(t, 1, fetch.refreshes)
	assert.Equal(t, uint64(4), msg.Seq)
	assert.Len(t, msg.Movies, 3)
	assert.Equal(t, usecase.RefreshApplied, msg.Outcome.Status)
}

func TestMoviesLoaded(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 57)

	assert.False(t, m.Loading())
	assert.Len(t, m.page.Items, 25)
	assert.Equal(t, 57, m.page.Total)

	view := m.View()
	assert.Contains(t, view, "Movie 000")
	assert.Contains(t, view, "1–25 of 57")
	assert.Contains(t, view, "Rows per page: 25")
}

func TestStaleSnapshotIgnored(t *testing.T) {
	m := newTestModel(&fakeFetch{})
	m.inflight = 2

	m, _ = update(t, m, moviesLoadedMsg{Seq: 2, Movies: catalogOf(2)})
	assert.True(t, m.Loading())

	m, _ = update(t, m, moviesLoadedMsg{Seq: 1, Movies: catalogOf(40)})

	assert.False(t, m.Loading())
	assert.Len(t, m.movies, 2)
	assert.Equal(t, uint64(2), m.seq)
}

func TestEmptyCatalog(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 0)

	assert.Contains(t, m.View(), "No movies")
	assert.Contains(t, m.View(), "0–0 of 0")
}

func TestPaging(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 57)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.State().Page, "no previous page")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, runes("l"))
	assert.Equal(t, 2, m.State().Page)
	assert.Len(t, m.page.Items, 7)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.State().Page, "no next page")

	m, _ = update(t, m, runes("h"))
	assert.Equal(t, 1, m.State().Page)
}

func TestRowsPerPage(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 57)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, _ = update(t, m, runes("+"))
	assert.Equal(t, 50, m.State().PageSize)
	assert.Equal(t, 0, m.State().Page)

	m, _ = update(t, m, runes("+"))
	m, _ = update(t, m, runes("+"))
	assert.Equal(t, 100, m.State().PageSize)

	for range 5 {
		m, _ = update(t, m, runes("-"))
	}
	assert.Equal(t, 10, m.State().PageSize)
}

func TestStepRows(t *testing.T) {
	assert.Equal(t, 50, stepRows(25, 1))
	assert.Equal(t, 10, stepRows(10, -1))
	assert.Equal(t, 50, stepRows(33, 1), "unknown sizes step from the default")
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(&fakeFetch{})

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, viewstate.ModeDark, m.State().Theme)
	assert.Contains(t, m.View(), "dark mode")

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, viewstate.ModeLight, m.State().Theme)
}

func TestSearch(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 57)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, _ = update(t, m, runes("/"))
	require.True(t, m.search.Focused())

	m, _ = update(t, m, runes("0"))
	m, _ = update(t, m, runes("5"))
	assert.Equal(t, "05", m.State().SearchTerm)
	assert.Equal(t, 0, m.State().Page)
	assert.Equal(t, 8, m.page.Total)

	// keys that are bindings elsewhere are text while searching
	m, _ = update(t, m, runes("q"))
	assert.Equal(t, "05q", m.State().SearchTerm)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.search.Focused())
	assert.Equal(t, "05q", m.State().SearchTerm)
}

func TestRefreshKey(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 3)

	m, cmd := update(t, m, runes("r"))

	assert.True(t, m.Loading())
	assert.NotNil(t, cmd)
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeFetch{})

	_, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowResize(t *testing.T) {
	m := loaded(t, newTestModel(&fakeFetch{}), 57)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 120, m.help.Width)
	assert.Equal(t, columns(120), m.table.Columns())
	assert.Greater(t, columns(120)[1].Width, columns(80)[1].Width)
}
