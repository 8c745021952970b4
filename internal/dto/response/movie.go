package response

import (
	"movees-db/internal/data/entity"
	"time"
)

type MovieResponse struct {
	Title       string   `json:"title"`
	Budget      float64  `json:"budget"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	Rating      string   `json:"rating"`
	Genres      []string `json:"genres"`
	Overview    string   `json:"overview,omitempty"`
	Cast        []string `json:"cast,omitempty"`
}

type CatalogStatusResponse struct {
	Loading   bool       `json:"loading"`
	Count     int        `json:"count"`
	Seq       uint64     `json:"seq"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
}

const (
	RatingSuccess = "success"
	RatingWarning = "warning"
	RatingError   = "error"
)

// RatingColor buckets a vote average for the rating chip.
func RatingColor(vote float64) string {
	switch {
	case vote >= 8:
		return RatingSuccess
	case vote >= 6:
		return RatingWarning
	default:
		return RatingError
	}
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		Title:       movie.Title,
		Budget:      movie.Budget,
		ReleaseDate: movie.ReleaseDate,
		VoteAverage: movie.VoteAverage,
		Rating:      RatingColor(movie.VoteAverage),
		Genres:      movie.GenreNames(),
		Overview:    movie.Overview,
	}
	if len(movie.Cast) > 0 {
		resp.Cast = movie.Cast.Characters()
	}
	return resp
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i := range movies {
		out[i] = MovieToResponse(&movies[i])
	}
	return out
}
