package viewstate

import (
	"fmt"
	"strconv"
	"strings"
)

// Event is a user action the reducer understands.
type Event interface {
	Kind() string
}

const (
	KindPage   = "page"
	KindRows   = "rows"
	KindSearch = "search"
	KindTheme  = "theme"
)

type PageChanged struct {
	Page int
}

// RowsPerPageChanged carries the raw control value; parsing happens in Reduce.
type RowsPerPageChanged struct {
	Raw string
}

type SearchTermChanged struct {
	Term string
}

type ThemeToggled struct {
	Dark bool
}

func (PageChanged) Kind() string        { return KindPage }
func (RowsPerPageChanged) Kind() string { return KindRows }
func (SearchTermChanged) Kind() string  { return KindSearch }
func (ThemeToggled) Kind() string       { return KindTheme }

// ParseEvent builds an Event from a kind and its raw value.
func ParseEvent(kind, value string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindPage:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("parse page %q: %w", value, err)
		}
		return PageChanged{Page: n}, nil
	case KindRows:
		return RowsPerPageChanged{Raw: value}, nil
	case KindSearch:
		return SearchTermChanged{Term: value}, nil
	case KindTheme:
		return ThemeToggled{Dark: parseDark(value)}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", kind)
	}
}

func parseDark(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == string(ModeDark) || v == "on" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
