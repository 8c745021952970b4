package response

import "movees-db/internal/viewstate"

type ViewStateResponse struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	SearchTerm string `json:"search_term"`
	Theme      string `json:"theme"`
}

type TransitionResponse struct {
	State ViewStateResponse `json:"state"`
	// Query is the state encoded as URL query parameters for GET /.
	Query string `json:"query"`
}

func ViewStateToResponse(s viewstate.State) ViewStateResponse {
	return ViewStateResponse{
		Page:       s.Page,
		PageSize:   s.PageSize,
		SearchTerm: s.SearchTerm,
		Theme:      string(s.Theme),
	}
}

func NewTransitionResponse(s viewstate.State) TransitionResponse {
	return TransitionResponse{
		State: ViewStateToResponse(s),
		Query: s.Values().Encode(),
	}
}
