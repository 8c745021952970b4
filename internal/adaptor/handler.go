package adaptor

import (
	"html/template"

	"movees-db/internal/usecase"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
	View  *ViewHandler
	Page  *PageHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, tmpl *template.Template, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(service.Movie, service.Fetch, config.View.DefaultPageSize, log),
		View:  NewViewHandler(service.Movie, config.View.DefaultPageSize, log),
		Page:  NewPageHandler(service.Movie, tmpl, config.View.DefaultPageSize, log),
	}
}
