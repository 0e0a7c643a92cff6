package dto

// StageRequest names a funnel stage.
type StageRequest struct {
	Name string `json:"name"`
}

// StagesResponse lists funnel stages in display order.
type StagesResponse struct {
	Stages []string `json:"stages"`
}
