package repository

import (
	"context"
	"movees-db/pkg/graphql"

	"go.uber.org/zap"
)

// Querier is the upstream transport the movie repository reads through.
type Querier interface {
	Do(ctx context.Context, req graphql.Request, out any) error
}

type Repository struct {
	Movie   MovieRepository
	Catalog CatalogRepository
}

func NewRepository(client Querier, mode graphql.Mode, withDetails bool, log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(client, mode, withDetails, log),
		Catalog: NewCatalogRepository(log),
	}
}
