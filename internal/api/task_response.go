package api

import (
	"time"

	"taskdeck/internal/model"
)

// swagger:model api.TaskResponse
type TaskResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Complete project documentation"`
	Description *string   `json:"description"`
	Status      string    `json:"status" example:"pending"`
	OwnerID     int       `json:"owner_id" example:"1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTaskResponse 由內部模型組裝回應
func NewTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
