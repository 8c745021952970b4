package usecase

import (
	"strings"

	"movees-db/internal/data/entity"
	"movees-db/internal/viewstate"
	"movees-db/pkg/utils"
)

// Page is the visible slice of the filtered catalogue. From and To are
// one-based and inclusive; both are 0 when Items is empty.
type Page struct {
	Items    []entity.Movie
	Total    int
	Page     int
	PageSize int
	From     int
	To       int
}

func (p Page) TotalPages() int {
	return utils.CalculateTotalPages(int64(p.Total), p.PageSize)
}

func (p Page) HasPrevious() bool {
	return p.Page > 0
}

func (p Page) HasNext() bool {
	return (p.Page+1)*p.PageSize < p.Total
}

// FilterByTitle keeps movies whose title contains term, ignoring case.
// An empty term keeps everything. The result never shares a backing array
// with movies.
func FilterByTitle(movies []entity.Movie, term string) []entity.Movie {
	out := make([]entity.Movie, 0, len(movies))
	if term == "" {
		return append(out, movies...)
	}

	needle := strings.ToLower(term)
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			out = append(out, m)
		}
	}
	return out
}

// Derive filters by title and returns the zero-based page of the result.
// Pages past the end come back empty.
func Derive(movies []entity.Movie, term string, page, pageSize int) []entity.Movie {
	return utils.SlicePage(FilterByTitle(movies, term), page, pageSize)
}

func DerivePage(movies []entity.Movie, s viewstate.State) Page {
	filtered := FilterByTitle(movies, s.SearchTerm)
	items := utils.SlicePage(filtered, s.Page, s.PageSize)

	p := Page{
		Items:    items,
		Total:    len(filtered),
		Page:     s.Page,
		PageSize: s.PageSize,
	}
	if len(items) > 0 {
		p.From = utils.CalculateOffset(s.Page, s.PageSize) + 1
		p.To = p.From + len(items) - 1
	}
	return p
}
