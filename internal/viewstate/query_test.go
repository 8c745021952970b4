package viewstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("page", "2")
	v.Set("page_size", "50")
	v.Set("q", "star")
	v.Set("theme", "dark")

	assert.Equal(t, State{Page: 2, PageSize: 50, SearchTerm: "star", Theme: ModeDark}, FromValues(v, 25))
}

func TestFromValuesLenient(t *testing.T) {
	v := url.Values{}
	v.Set("page", "-4")
	v.Set("page_size", "many")
	v.Set("theme", "neon")

	assert.Equal(t, Initial(25), FromValues(v, 25))
	assert.Equal(t, Initial(10), FromValues(url.Values{}, 10))
}

func TestValuesRoundTrip(t *testing.T) {
	states := []State{
		Initial(25),
		{Page: 7, PageSize: 10, SearchTerm: "a & b = c?", Theme: ModeDark},
		{Page: 0, PageSize: 100, SearchTerm: "  spaced ", Theme: ModeLight},
		{Page: 1, PageSize: 3, SearchTerm: "Amélie", Theme: ModeLight},
	}

	for _, s := range states {
		encoded := s.Values().Encode()
		parsed, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, s, FromValues(parsed, 25), encoded)
	}
}

func TestEventFromValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Event
		ok    bool
	}{
		{"none", "page=1", nil, false},
		{"page", "ev=page&value=3", PageChanged{Page: 3}, true},
		{"bad page", "ev=page&value=x", nil, false},
		{"rows", "ev=rows&value=50", RowsPerPageChanged{Raw: "50"}, true},
		{"search", "ev=search&value=+star+", SearchTermChanged{Term: " star "}, true},
		{"empty search", "ev=search", SearchTermChanged{Term: ""}, true},
		{"theme dark", "ev=theme&value=dark", ThemeToggled{Dark: true}, true},
		{"theme true", "ev=theme&value=true", ThemeToggled{Dark: true}, true},
		{"theme light", "ev=theme&value=light", ThemeToggled{Dark: false}, true},
		{"unknown", "ev=zoom&value=1", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			ev, ok := EventFromValues(v)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestParseEventKinds(t *testing.T) {
	for _, kind := range []string{KindPage, KindRows, KindSearch, KindTheme} {
		ev, err := ParseEvent(kind, "1")
		require.NoError(t, err)
		assert.Equal(t, kind, ev.Kind())
	}
}
