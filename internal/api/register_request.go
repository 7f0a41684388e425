package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Ann"`
	Email    string `json:"email" validate:"required,email" example:"ann@x.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
}
