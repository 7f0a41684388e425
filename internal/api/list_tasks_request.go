package api

// swagger:model api.ListTasksRequest
type ListTasksRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending completed" example:"pending"`
	Page   int    `query:"page" validate:"omitempty,min=1" example:"1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100" example:"10"`
}
