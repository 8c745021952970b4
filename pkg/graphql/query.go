package graphql

import (
	"fmt"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 25
)

// Mode selects how parameters reach the upstream query.
type Mode string

const (
	// ModeVariables binds parameters as GraphQL variables.
	ModeVariables Mode = "variables"
	// ModeInline writes parameters into the query text, escaping strings.
	ModeInline Mode = "inline"
)

// ParseMode maps a config value to a Mode, falling back to ModeVariables.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeInline {
		return ModeInline
	}
	return ModeVariables
}

// Request is the JSON body POSTed to the query endpoint.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// MoviesParams parameterises the movies query. Page is one-based.
type MoviesParams struct {
	Page        int
	PageSize    int
	SearchTerm  string
	WithDetails bool
}

// WithDefaults fills non-positive paging values with page 1, page size 25.
func (p MoviesParams) WithDefaults() MoviesParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// BuildMoviesQuery renders the movies query for p in the given mode.
func BuildMoviesQuery(p MoviesParams, mode Mode) Request {
	p = p.WithDefaults()
	fields := movieFields(p.WithDetails)

	if mode == ModeInline {
		return Request{
			Query: fmt.Sprintf("{\n  movies(page: %d pageSize: %d searchTerm: %s) {\n%s  }\n}\n",
				p.Page, p.PageSize, QuoteString(p.SearchTerm), fields),
		}
	}

	return Request{
		Query: "query Movies($page: Int, $pageSize: Int, $searchTerm: String) {\n" +
			"  movies(page: $page, pageSize: $pageSize, searchTerm: $searchTerm) {\n" +
			fields +
			"  }\n}\n",
		Variables: map[string]any{
			"page":       p.Page,
			"pageSize":   p.PageSize,
			"searchTerm": p.SearchTerm,
		},
	}
}

func movieFields(withDetails bool) string {
	var b strings.Builder
	b.WriteString("    title\n")
	b.WriteString("    budget\n")
	b.WriteString("    release_date\n")
	b.WriteString("    vote_average\n")
	b.WriteString("    genres {\n      genre_name\n    }\n")
	if withDetails {
		b.WriteString("    overview\n")
		b.WriteString("    cast {\n      character_name\n    }\n")
	}
	return b.String()
}

// QuoteString renders s as a GraphQL string literal.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
