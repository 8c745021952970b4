package graphql

import (
	"strconv"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMoviesParamsWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   MoviesParams
		want MoviesParams
	}{
		{"zero value", MoviesParams{}, MoviesParams{Page: 1, PageSize: 25}},
		{"negative", MoviesParams{Page: -3, PageSize: -1}, MoviesParams{Page: 1, PageSize: 25}},
		{"kept", MoviesParams{Page: 2, PageSize: 200, SearchTerm: "x"}, MoviesParams{Page: 2, PageSize: 200, SearchTerm: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}

func TestBuildMoviesQueryVariables(t *testing.T) {
	req := BuildMoviesQuery(MoviesParams{Page: 1, PageSize: 200, SearchTerm: `a"b`}, ModeVariables)

	assert.Contains(t, req.Query, "$searchTerm: String")
	assert.Contains(t, req.Query, "movies(page: $page, pageSize: $pageSize, searchTerm: $searchTerm)")
	assert.NotContains(t, req.Query, `a"b`)
	assert.Equal(t, map[string]any{"page": 1, "pageSize": 200, "searchTerm": `a"b`}, req.Variables)

	for _, field := range []string{"title", "budget", "release_date", "vote_average", "genre_name"} {
		assert.Contains(t, req.Query, field)
	}
	assert.NotContains(t, req.Query, "overview")
}

func TestBuildMoviesQueryDefaults(t *testing.T) {
	req := BuildMoviesQuery(MoviesParams{}, ModeVariables)

	assert.Equal(t, 1, req.Variables["page"])
	assert.Equal(t, 25, req.Variables["pageSize"])
	assert.Equal(t, "", req.Variables["searchTerm"])
}

func TestBuildMoviesQueryInline(t *testing.T) {
	req := BuildMoviesQuery(MoviesParams{Page: 1, PageSize: 200}, ModeInline)

	assert.Nil(t, req.Variables)
	assert.Contains(t, req.Query, `movies(page: 1 pageSize: 200 searchTerm: "")`)
}

func TestBuildMoviesQueryInlineEscapes(t *testing.T) {
	req := BuildMoviesQuery(MoviesParams{SearchTerm: `x") { __schema`}, ModeInline)

	assert.Contains(t, req.Query, `searchTerm: "x\") { __schema")`)
}

func TestBuildMoviesQueryDetails(t *testing.T) {
	req := BuildMoviesQuery(MoviesParams{WithDetails: true}, ModeVariables)

	assert.Contains(t, req.Query, "overview")
	assert.Contains(t, req.Query, "character_name")
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeInline, ParseMode(" Inline "))
	assert.Equal(t, ModeVariables, ParseMode("variables"))
	assert.Equal(t, ModeVariables, ParseMode(""))
	assert.Equal(t, ModeVariables, ParseMode("bogus"))
}

func TestQuoteString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"Jaws", `"Jaws"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"bell\x07", `"bell\u0007"`},
		{"Amélie", `"Amélie"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteString(tt.in))
		})
	}
}

func FuzzQuoteString(f *testing.F) {
	for _, seed := range []string{"", "Jaws", `"`, `\`, "\n", `") { x }`, "Amélie"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		quoted := QuoteString(s)
		if !strings.HasPrefix(quoted, `"`) || !strings.HasSuffix(quoted, `"`) || len(quoted) < 2 {
			t.Fatalf("not a literal: %q", quoted)
		}

		inner := quoted[1 : len(quoted)-1]
		for i := 0; i < len(inner); i++ {
			if inner[i] == '\\' {
				i++
				continue
			}
			if inner[i] == '"' {
				t.Fatalf("unescaped quote in %q", quoted)
			}
		}

		if !utf8.ValidString(s) || !printable(s) {
			return
		}
		got, err := strconv.Unquote(quoted)
		if err != nil {
			t.Fatalf("unquote %q: %v", quoted, err)
		}
		if got != s {
			t.Fatalf("round trip: got %q want %q", got, s)
		}
	})
}

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) && r != ' ' {
			return false
		}
	}
	return true
}
