package adaptor

import (
	"net/http"

	"movees-db/internal/dto/request"
	"movees-db/internal/usecase"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service         usecase.MovieService
	fetch           usecase.FetchService
	defaultPageSize int
	log             *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, fetch usecase.FetchService, defaultPageSize int, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:         service,
		fetch:           fetch,
		defaultPageSize: defaultPageSize,
		log:             log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := request.ListMoviesFromQuery(r.URL.Query(), h.defaultPageSize)

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Invalid movie list query",
			zap.String("query", r.URL.RawQuery),
			zap.Any("errors", validationErrors),
		)
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movies := h.service.GetMovies(r.Context(), &req)
	utils.ResponseSuccess(w, "success", movies)
}

// GetStatus handles GET /api/movies/status
func (h *MovieHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetStatus(r.Context()))
}

// Refresh handles POST /api/movies/refresh. Upstream failures are reported
// in the outcome; the catalogue keeps its previous list.
func (h *MovieHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	outcome := h.fetch.Refresh(r.Context())

	h.log.Info("Manual refresh",
		zap.String("status", string(outcome.Status)),
		zap.Uint64("seq", outcome.Seq),
		zap.Int("count", outcome.Count),
	)

	utils.ResponseSuccess(w, "refresh "+string(outcome.Status), outcome)
}
