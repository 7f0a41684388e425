package api

import "time"

// UserResponse 公開的使用者資訊，永不包含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ann"`
	Email     string    `json:"email" example:"ann@x.com"`
	CreatedAt time.Time `json:"created_at"`
}
