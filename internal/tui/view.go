package tui

import (
	"fmt"
	"strconv"
	"strings"

	"movees-db/internal/dto/response"
	"movees-db/internal/usecase"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	numberWidth = 5
	budgetWidth = 16
	dateWidth   = 12
	ratingWidth = 7
	minTitle    = 16
	minGenres   = 12
)

// columns splits the spare width between the title and genres columns.
func columns(width int) []table.Column {
	fixed := numberWidth + budgetWidth + dateWidth + ratingWidth + 12
	spare := max(width-fixed, minTitle+minGenres)
	title := max(spare*3/5, minTitle)
	genres := max(spare-title, minGenres)

	return []table.Column{
		{Title: "#", Width: numberWidth},
		{Title: "Title", Width: title},
		{Title: "Budget", Width: budgetWidth},
		{Title: "Release date", Width: dateWidth},
		{Title: "Rating", Width: ratingWidth},
		{Title: "Genres", Width: genres},
	}
}

func rowsFor(p usecase.Page) []table.Row {
	rows := make([]table.Row, 0, len(p.Items))
	for _, r := range response.MoviesToRows(p.Items, p.Page*p.PageSize) {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Number),
			r.Title,
			r.Budget,
			r.ReleaseDate,
			r.VoteAverage,
			strings.Join(r.Genres, ", "),
		})
	}
	return rows
}

func (m Model) View() string {
	var b strings.Builder

	header := m.styles.Header.Width(max(m.width-2, 0)).Render(
		fmt.Sprintf("%s  ·  %s mode", m.appName, m.state.Theme),
	)
	b.WriteString(header + "\n\n")
	b.WriteString(m.search.View() + "\n")

	if m.Loading() {
		b.WriteString(m.spinner.View() + " Loading…\n")
	} else {
		b.WriteString("\n")
	}

	switch {
	case len(m.page.Items) > 0:
		b.WriteString(m.table.View() + "\n")
		b.WriteString(m.detail() + "\n")
	case m.Loading():
		b.WriteString(m.styles.Muted.Render("Loading…") + "\n\n")
	default:
		b.WriteString(m.styles.Muted.Render("No movies") + "\n\n")
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Muted.Render(fmt.Sprintf("Rows per page: %d", m.state.PageSize)),
		"   ",
		m.styles.Caption.Render(response.Caption(m.page.From, m.page.To, m.page.Total)),
		"   ",
		m.styles.Muted.Render(m.paginator.View()),
	)
	b.WriteString(footer + "\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

// detail renders the rating chip and genre chips of the selected row.
func (m Model) detail() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.page.Items) {
		return ""
	}
	movie := m.page.Items[idx]

	parts := []string{
		m.styles.Rating[response.RatingColor(movie.VoteAverage)].Render(response.FormatVote(movie.VoteAverage)),
	}
	for _, g := range movie.GenreNames() {
		parts = append(parts, m.styles.Chip.Render(g))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
