package usecase

import (
	"movees-db/internal/data/repository"
	"movees-db/internal/viewstate"
	"movees-db/pkg/graphql"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
	Fetch FetchService
}

// ViewReducer builds the reducer both front ends share.
func ViewReducer(config *utils.Config) viewstate.Reducer {
	return viewstate.Reducer{
		DefaultPageSize:   config.View.DefaultPageSize,
		ResetPageOnFilter: config.View.ResetPageOnFilter,
	}
}

func NewService(repo *repository.Repository, config *utils.Config, recorder FetchRecorder, log *zap.Logger) *Service {
	batch := graphql.MoviesParams{
		Page:     config.Fetch.Page,
		PageSize: config.Fetch.PageSize,
	}

	return &Service{
		Movie: NewMovieService(repo, ViewReducer(config), config.App.Name, log),
		Fetch: NewFetchService(repo, batch, recorder, log),
	}
}
