package api

// swagger:model api.Pagination
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"15"`
	TotalPages int `json:"totalPages" example:"2"`
}

// swagger:model api.TaskListResponse
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}
