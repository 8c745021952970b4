package wire

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"movees-db/internal/adaptor"
	"movees-db/internal/data/repository"
	"movees-db/internal/usecase"
	"movees-db/pkg/graphql"
	"movees-db/pkg/metrics"
	"movees-db/pkg/middleware"
	"movees-db/pkg/utils"
	"movees-db/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds every wired dependency
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Metrics *metrics.Metrics
}

// NewRepository builds the upstream client and the repositories on top of it.
func NewRepository(config *utils.Config, logger *zap.Logger) *repository.Repository {
	client := graphql.NewClient(
		config.Upstream.URL,
		config.Upstream.Timeout,
		graphql.WithRateLimit(config.Upstream.RateLimit, config.Upstream.Burst),
	)

	return repository.NewRepository(
		client,
		graphql.ParseMode(config.Upstream.QueryMode),
		config.Upstream.IncludeDetails,
		logger,
	)
}

// Wiring initialises services, handlers and the router. ctx bounds the
// lifetime of background helpers such as the rate limiter cleanup.
func Wiring(ctx context.Context, repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	m := metrics.New()
	service := usecase.NewService(repo, config, m, logger)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	handler := adaptor.NewHandler(service, config, tmpl, logger)

	router, err := setupRouter(ctx, handler, m, config, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router:  router,
		Service: service,
		Metrics: m,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	ctx context.Context,
	handler *adaptor.Handler,
	m *metrics.Metrics,
	config *utils.Config,
	logger *zap.Logger,
) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics(m))
	r.Use(chimw.Timeout(config.Server.WriteTimeout))

	// Apply routes
	wireMovie(ctx, r, handler.Movie, handler.View, config, logger)
	if err := wirePage(r, handler.Page); err != nil {
		return nil, err
	}

	r.Handle("/metrics", m.Handler())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r, nil
}

func refreshInterval(config *utils.Config) time.Duration {
	if config.Fetch.RefreshInterval < 0 {
		return 0
	}
	return config.Fetch.RefreshInterval
}

// StartRefresh runs the initial fetch and the optional periodic refresh in
// the background until ctx is done.
func (a *App) StartRefresh(ctx context.Context, config *utils.Config) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Service.Fetch.Run(ctx, refreshInterval(config))
	}()
	return done
}
