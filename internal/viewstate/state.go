package viewstate

const DefaultPageSize = 25

// RowsPerPageOptions are the choices offered by the rows-per-page control.
var RowsPerPageOptions = []int{10, 25, 50, 100}

// State is the client view state. Page is zero-based. Values are replaced,
// never mutated, by Reduce.
type State struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	SearchTerm string `json:"search_term"`
	Theme      Mode   `json:"theme"`
}

func Initial(defaultPageSize int) State {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultPageSize
	}
	return State{
		Page:     0,
		PageSize: defaultPageSize,
		Theme:    ModeLight,
	}
}

// Normalize repairs out-of-range fields so the result satisfies the State
// invariants.
func (s State) Normalize(defaultPageSize int) State {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultPageSize
	}
	if s.Page < 0 {
		s.Page = 0
	}
	if s.PageSize < 1 {
		s.PageSize = defaultPageSize
	}
	s.Theme = ParseMode(string(s.Theme))
	return s
}

// CurrentTheme resolves the theme mode to one of the two precomputed themes.
func (s State) CurrentTheme() Theme {
	return ThemeFor(s.Theme)
}
