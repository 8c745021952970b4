package wire

import (
	"context"
	"net/http"

	"movees-db/internal/adaptor"
	"movees-db/pkg/middleware"
	"movees-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	ctx context.Context,
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	viewHandler *adaptor.ViewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(config.Server.CORSOrigin))
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseNotFound(w, "Route not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseMethodNotAllowed(w, "Method not allowed")
		})

		// GET /api/movies - derived page of the catalogue
		r.Get("/movies", movieHandler.GetMovies)
		r.Get("/movies/status", movieHandler.GetStatus)

		// POST /api/movies/refresh - refetch, limited per client IP
		r.With(middleware.RateLimit(ctx, config.Server.RefreshRateLimit, config.Server.RefreshBurst, log)).
			Post("/movies/refresh", movieHandler.Refresh)

		r.Post("/view/transition", viewHandler.Transition)
	})
}
