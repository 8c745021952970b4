package viewstate

import (
	"movees-db/pkg/utils"
	"strings"
)

type Reducer struct {
	DefaultPageSize int
	// ResetPageOnFilter sends the page back to 0 when the search term or
	// the page size actually changes.
	ResetPageOnFilter bool
}

var DefaultReducer = Reducer{
	DefaultPageSize:   DefaultPageSize,
	ResetPageOnFilter: true,
}

func Reduce(s State, e Event) State {
	return DefaultReducer.Reduce(s, e)
}

// Reduce returns the state after e. It never fails; nil or unknown events
// leave s unchanged.
func (r Reducer) Reduce(s State, e Event) State {
	fallback := r.DefaultPageSize
	if fallback < 1 {
		fallback = DefaultPageSize
	}

	switch ev := e.(type) {
	case PageChanged:
		s.Page = max(ev.Page, 0)
	case RowsPerPageChanged:
		size := utils.ParseInt(strings.TrimSpace(ev.Raw), fallback)
		if r.ResetPageOnFilter && size != s.PageSize {
			s.Page = 0
		}
		s.PageSize = size
	case SearchTermChanged:
		if r.ResetPageOnFilter && ev.Term != s.SearchTerm {
			s.Page = 0
		}
		s.SearchTerm = ev.Term
	case ThemeToggled:
		s.Theme = ModeLight
		if ev.Dark {
			s.Theme = ModeDark
		}
	}

	return s
}
