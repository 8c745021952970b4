package adaptor

import (
	"bytes"
	"html/template"
	"net/http"

	"movees-db/internal/usecase"
	"movees-db/internal/viewstate"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

const indexTemplate = "index.html"

type PageHandler struct {
	service         usecase.MovieService
	tmpl            *template.Template
	defaultPageSize int
	log             *zap.Logger
}

func NewPageHandler(service usecase.MovieService, tmpl *template.Template, defaultPageSize int, log *zap.Logger) *PageHandler {
	return &PageHandler{
		service:         service,
		tmpl:            tmpl,
		defaultPageSize: defaultPageSize,
		log:             log.With(zap.String("handler", "page")),
	}
}

// Index handles GET /. The query carries the current view state and at most
// one event, which is reduced before rendering.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := viewstate.FromValues(query, h.defaultPageSize)

	if event, ok := viewstate.EventFromValues(query); ok {
		next := h.service.Transition(state, event)
		http.Redirect(w, r, "/?"+next.Values().Encode(), http.StatusSeeOther)
		return
	}

	view := h.service.GetPageView(r.Context(), state)

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, indexTemplate, view); err != nil {
		h.log.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.ResponseHTML(w, http.StatusOK, &buf)
}
