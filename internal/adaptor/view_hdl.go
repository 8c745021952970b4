package adaptor

import (
	"encoding/json"
	"net/http"

	"movees-db/internal/dto/request"
	"movees-db/internal/dto/response"
	"movees-db/internal/usecase"
	"movees-db/internal/viewstate"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

type ViewHandler struct {
	service         usecase.MovieService
	defaultPageSize int
	log             *zap.Logger
}

func NewViewHandler(service usecase.MovieService, defaultPageSize int, log *zap.Logger) *ViewHandler {
	return &ViewHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
		log:             log.With(zap.String("handler", "view")),
	}
}

// Transition handles POST /api/view/transition
func (h *ViewHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req request.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := viewstate.ParseEvent(req.Event.Type, req.Event.Value)
	if err != nil {
		h.log.Warn("Invalid view event",
			zap.Error(err),
			zap.String("type", req.Event.Type),
		)
		utils.ResponseBadRequest(w, "Invalid event", map[string]string{"value": err.Error()})
		return
	}

	state := viewstate.State{
		Page:       req.State.Page,
		PageSize:   req.State.PageSize,
		SearchTerm: req.State.SearchTerm,
		Theme:      viewstate.ParseMode(req.State.Theme),
	}.Normalize(h.defaultPageSize)

	next := h.service.Transition(state, event)
	utils.ResponseSuccess(w, "success", response.NewTransitionResponse(next))
}
