package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"movees-db/internal/data/entity"
	"movees-db/internal/data/repository"
	"movees-db/internal/usecase"
	"movees-db/internal/viewstate"
	"movees-db/web"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockFetchService struct {
	mock.Mock
}

func (m *MockFetchService) Refresh(ctx context.Context) usecase.RefreshOutcome {
	args := m.Called(ctx)
	return args.Get(0).(usecase.RefreshOutcome)
}

func (m *MockFetchService) Snapshot() repository.Snapshot {
	args := m.Called()
	return args.Get(0).(repository.Snapshot)
}

func (m *MockFetchService) Run(ctx context.Context, interval time.Duration) {
	m.Called(ctx, interval)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]any  `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func seededCatalog(movies []entity.Movie) *repository.Repository {
	repo := &repository.Repository{Catalog: repository.NewCatalogRepository(zap.NewNop())}
	seq := repo.Catalog.Begin()
	repo.Catalog.Commit(seq, movies)
	repo.Catalog.Settle(seq)
	return repo
}

func numbered(n int) []entity.Movie {
	out := make([]entity.Movie, n)
	for i := range out {
		out[i] = entity.Movie{
			Title:       fmt.Sprintf("Movie %03d", i),
			Budget:      1500000,
			ReleaseDate: "2001-01-01",
			VoteAverage: float64(i%10) + 0.5,
			Genres:      []entity.Genre{{Name: "Drama"}},
		}
	}
	return out
}

func newTestHandler(t *testing.T, repo *repository.Repository, fetch usecase.FetchService) *Handler {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)

	movies := usecase.NewMovieService(repo, viewstate.DefaultReducer, "Movees DB", zap.NewNop())
	return &Handler{
		Movie: NewMovieHandler(movies, fetch, 25, zap.NewNop()),
		View:  NewViewHandler(movies, 25, zap.NewNop()),
		Page:  NewPageHandler(movies, tmpl, 25, zap.NewNop()),
	}
}
