package api

// swagger:model api.CreateTaskRequest
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required" example:"Complete project documentation"`
	Description *string `json:"description" validate:"omitempty" example:"Write detailed documentation for the API"`
}
