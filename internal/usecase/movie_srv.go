package usecase

import (
	"context"

	"movees-db/internal/data/repository"
	"movees-db/internal/dto/request"
	"movees-db/internal/dto/response"
	"movees-db/internal/viewstate"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.ListMoviesRequest) *response.PaginatedResponse[response.MovieResponse]
	GetStatus(ctx context.Context) response.CatalogStatusResponse
	GetPageView(ctx context.Context, state viewstate.State) *response.PageView
	Transition(state viewstate.State, event viewstate.Event) viewstate.State
}

type movieService struct {
	repo    *repository.Repository
	reducer viewstate.Reducer
	appName string
	log     *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	reducer viewstate.Reducer,
	appName string,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:    repo,
		reducer: reducer,
		appName: appName,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.ListMoviesRequest) *response.PaginatedResponse[response.MovieResponse] {
	snap := s.repo.Catalog.Snapshot()
	page := DerivePage(snap.Movies, viewstate.State{
		Page:       req.Page,
		PageSize:   req.PageSize,
		SearchTerm: req.Search,
	})

	s.log.Debug("Derived movie page",
		zap.Int("page", req.Page),
		zap.Int("page_size", req.PageSize),
		zap.String("q", req.Search),
		zap.Int("total", page.Total),
	)

	return response.NewPaginatedResponse(
		response.MoviesToResponse(page.Items),
		page.Page,
		page.PageSize,
		int64(page.Total),
	)
}

func (s *movieService) GetStatus(ctx context.Context) response.CatalogStatusResponse {
	snap := s.repo.Catalog.Snapshot()
	status := response.CatalogStatusResponse{
		Loading: snap.Loading,
		Count:   len(snap.Movies),
		Seq:     snap.Seq,
	}
	if !snap.FetchedAt.IsZero() {
		at := snap.FetchedAt
		status.FetchedAt = &at
	}
	return status
}

func (s *movieService) Transition(state viewstate.State, event viewstate.Event) viewstate.State {
	next := s.reducer.Reduce(state, event)
	if event != nil {
		s.log.Debug("Applied view event",
			zap.String("event", event.Kind()),
			zap.Int("page", next.Page),
			zap.Int("page_size", next.PageSize),
		)
	}
	return next
}

// GetPageView derives the visible rows and precomputes every navigation
// link by running the reducer on the current state.
func (s *movieService) GetPageView(ctx context.Context, state viewstate.State) *response.PageView {
	snap := s.repo.Catalog.Snapshot()
	page := DerivePage(snap.Movies, state)

	view := &response.PageView{
		AppName:     s.appName,
		State:       state,
		Theme:       state.CurrentTheme(),
		Loading:     snap.Loading,
		Rows:        response.MoviesToRows(page.Items, page.From-1),
		Total:       page.Total,
		Caption:     response.Caption(page.From, page.To, page.Total),
		RowsOptions: response.NewRowsOptions(state.PageSize),
		Empty:       len(page.Items) == 0,
		ThemeToggle: s.link(state, viewstate.ThemeToggled{Dark: !state.Theme.IsDark()}, true),
		Previous:    s.link(state, viewstate.PageChanged{Page: state.Page - 1}, page.HasPrevious()),
		Next:        s.link(state, viewstate.PageChanged{Page: state.Page + 1}, page.HasNext()),
	}

	return view
}

func (s *movieService) link(state viewstate.State, event viewstate.Event, enabled bool) response.PageLink {
	if !enabled {
		return response.PageLink{}
	}
	return response.PageLink{
		Href:    "?" + s.reducer.Reduce(state, event).Values().Encode(),
		Enabled: true,
	}
}
