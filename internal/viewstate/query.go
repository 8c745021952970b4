package viewstate

import (
	"movees-db/pkg/utils"
	"net/url"
	"strconv"
)

const (
	ParamPage     = "page"
	ParamPageSize = "page_size"
	ParamSearch   = "q"
	ParamTheme    = "theme"
	ParamEvent    = "ev"
	ParamValue    = "value"
)

// FromValues decodes a state from URL query values. Missing or invalid
// fields fall back to the defaults.
func FromValues(v url.Values, defaultPageSize int) State {
	s := Initial(defaultPageSize)
	s.Page = utils.ParseIndex(v.Get(ParamPage), 0)
	s.PageSize = utils.ParseInt(v.Get(ParamPageSize), s.PageSize)
	s.SearchTerm = v.Get(ParamSearch)
	s.Theme = ParseMode(v.Get(ParamTheme))
	return s
}

// Values encodes s so that FromValues(s.Values()) == s for a normalised s.
func (s State) Values() url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(s.Page))
	v.Set(ParamPageSize, strconv.Itoa(s.PageSize))
	if s.SearchTerm != "" {
		v.Set(ParamSearch, s.SearchTerm)
	}
	v.Set(ParamTheme, string(ParseMode(string(s.Theme))))
	return v
}

// EventFromValues reads an optional event from the "ev" and "value" params.
func EventFromValues(v url.Values) (Event, bool) {
	kind := v.Get(ParamEvent)
	if kind == "" {
		return nil, false
	}
	ev, err := ParseEvent(kind, v.Get(ParamValue))
	if err != nil {
		return nil, false
	}
	return ev, true
}
