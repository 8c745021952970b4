package response

import (
	"fmt"
	"strconv"

	"movees-db/internal/data/entity"
	"movees-db/internal/viewstate"

	"github.com/dustin/go-humanize"
)

type PageRow struct {
	Number      int
	Title       string
	Budget      string
	ReleaseDate string
	VoteAverage string
	Rating      string
	Genres      []string
}

// PageLink is a navigation control. Href is empty when the control is
// disabled.
type PageLink struct {
	Href    string
	Enabled bool
}

type RowsOption struct {
	Value    int
	Selected bool
}

// PageView is everything the HTML table page renders.
type PageView struct {
	AppName     string
	State       viewstate.State
	Theme       viewstate.Theme
	Loading     bool
	Rows        []PageRow
	Total       int
	Caption     string
	Previous    PageLink
	Next        PageLink
	ThemeToggle PageLink
	RowsOptions []RowsOption
	Empty       bool
}

// FormatBudget renders a budget with thousands separators, "$1,500,000".
func FormatBudget(budget float64) string {
	if budget == float64(int64(budget)) {
		return "$" + humanize.Comma(int64(budget))
	}
	return "$" + humanize.Commaf(budget)
}

func FormatVote(vote float64) string {
	return strconv.FormatFloat(vote, 'f', 1, 64)
}

// Caption is the "from–to of total" pagination label.
func Caption(from, to, total int) string {
	return fmt.Sprintf("%d–%d of %d", from, to, total)
}

// MoviesToRows numbers rows absolutely, starting at offset+1.
func MoviesToRows(movies []entity.Movie, offset int) []PageRow {
	rows := make([]PageRow, len(movies))
	for i := range movies {
		m := &movies[i]
		rows[i] = PageRow{
			Number:      offset + i + 1,
			Title:       m.Title,
			Budget:      FormatBudget(m.Budget),
			ReleaseDate: m.ReleaseDate,
			VoteAverage: FormatVote(m.VoteAverage),
			Rating:      RatingColor(m.VoteAverage),
			Genres:      m.GenreNames(),
		}
	}
	return rows
}

func NewRowsOptions(current int) []RowsOption {
	opts := make([]RowsOption, 0, len(viewstate.RowsPerPageOptions)+1)
	found := false
	for _, v := range viewstate.RowsPerPageOptions {
		opts = append(opts, RowsOption{Value: v, Selected: v == current})
		found = found || v == current
	}
	if !found {
		opts = append(opts, RowsOption{Value: current, Selected: true})
	}
	return opts
}
