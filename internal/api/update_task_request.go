package api

// UpdateTaskRequest 部分更新：缺漏欄位維持原值
// swagger:model api.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1" example:"Complete project documentation"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed" example:"completed"`
}
