package request

// ViewState mirrors viewstate.State on the wire. A zero page size means
// the configured default.
type ViewState struct {
	Page       int    `json:"page" validate:"gte=0"`
	PageSize   int    `json:"page_size" validate:"gte=0"`
	SearchTerm string `json:"search_term"`
	Theme      string `json:"theme" validate:"omitempty,oneof=light dark"`
}

type ViewEvent struct {
	Type  string `json:"type" validate:"required,oneof=page rows search theme"`
	Value string `json:"value"`
}

// TransitionRequest is the body of POST /api/view/transition.
type TransitionRequest struct {
	State ViewState `json:"state"`
	Event ViewEvent `json:"event"`
}
