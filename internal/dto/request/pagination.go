package request

import (
	"net/url"
	"strconv"
	"strings"
)

// ListMoviesRequest is the query of GET /api/movies. Page is zero-based,
// matching the view state.
type ListMoviesRequest struct {
	Page     int    `json:"page" validate:"gte=0"`
	PageSize int    `json:"page_size" validate:"gte=1,lte=1000"`
	Search   string `json:"q" validate:"max=200"`
}

// ListMoviesFromQuery reads page, page_size and q. Unparseable numbers are
// kept as out-of-range values so validation reports them.
func ListMoviesFromQuery(q url.Values, defaultPageSize int) ListMoviesRequest {
	return ListMoviesRequest{
		Page:     parseQueryInt(q.Get("page"), 0, -1),
		PageSize: parseQueryInt(q.Get("page_size"), defaultPageSize, 0),
		Search:   q.Get("q"),
	}
}

func parseQueryInt(value string, empty, invalid int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return empty
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return invalid
	}
	return n
}
