package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ann@x.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
}
