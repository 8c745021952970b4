package repository

import (
	"context"
	"fmt"
	"movees-db/internal/data/entity"
	"movees-db/pkg/graphql"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FetchMovies(ctx context.Context, params graphql.MoviesParams) ([]entity.Movie, error)
}

type movieRepository struct {
	client      Querier
	mode        graphql.Mode
	withDetails bool
	log         *zap.Logger
}

func NewMovieRepository(client Querier, mode graphql.Mode, withDetails bool, log *zap.Logger) MovieRepository {
	return &movieRepository{
		client:      client,
		mode:        mode,
		withDetails: withDetails,
		log:         log.With(zap.String("repository", "movie")),
	}
}

type moviesPayload struct {
	Movies []entity.Movie `json:"movies"`
}

func (r *movieRepository) FetchMovies(ctx context.Context, params graphql.MoviesParams) ([]entity.Movie, error) {
	if r.withDetails {
		params.WithDetails = true
	}
	params = params.WithDefaults()
	req := graphql.BuildMoviesQuery(params, r.mode)

	var payload moviesPayload
	if err := r.client.Do(ctx, req, &payload); err != nil {
		r.log.Error("Failed to fetch movies",
			zap.Error(err),
			zap.String("kind", graphql.ErrorKind(err)),
			zap.Int("page", params.Page),
			zap.Int("page_size", params.PageSize),
		)
		return nil, fmt.Errorf("fetch movies: %w", err)
	}

	if payload.Movies == nil {
		return []entity.Movie{}, nil
	}

	r.log.Debug("Fetched movies",
		zap.Int("count", len(payload.Movies)),
		zap.String("mode", string(r.mode)),
	)

	return payload.Movies, nil
}
