package tui

import (
	"movees-db/internal/dto/response"
	"movees-db/internal/viewstate"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	App     lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Caption lipgloss.Style
	Chip    lipgloss.Style
	Rating  map[string]lipgloss.Style
	Table   table.Styles
	Spinner lipgloss.Style
}

// newStyles derives every terminal style from one of the two themes.
func newStyles(theme viewstate.Theme) styles {
	p := theme.Palette

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(p.Text)).
		Bold(true)
	tableStyles.Cell = tableStyles.Cell.Foreground(lipgloss.Color(p.Text))
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color(p.HeaderText)).
		Background(lipgloss.Color(p.Primary)).
		Bold(false)

	rating := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(color)).
			Padding(0, 1)
	}

	return styles{
		App: lipgloss.NewStyle().Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.HeaderText)).
			Background(lipgloss.Color(p.Header)).
			Bold(true).
			Padding(0, 1),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)),
		Caption: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Chip)).
			Padding(0, 1).
			MarginRight(1),
		Rating: map[string]lipgloss.Style{
			response.RatingSuccess: rating(p.Success),
			response.RatingWarning: rating(p.Warning),
			response.RatingError:   rating(p.Error),
		},
		Table:   tableStyles,
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Primary)),
	}
}

var themeStyles = map[viewstate.Mode]styles{
	viewstate.ModeLight: newStyles(viewstate.Light),
	viewstate.ModeDark:  newStyles(viewstate.Dark),
}

func stylesFor(m viewstate.Mode) styles {
	return themeStyles[viewstate.ThemeFor(m).Mode]
}
