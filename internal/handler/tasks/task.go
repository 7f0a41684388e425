// File: internal/handler/tasks/task.go
package tasks

import (
	"errors"
	"net/http"
	"strconv"

	"taskdeck/internal/api"
	"taskdeck/internal/database"
	"taskdeck/internal/middleware"
	"taskdeck/internal/model"
	"taskdeck/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫下列變數
var (
	createTask   = service.CreateTask
	listTasks    = service.ListTasks
	getTask      = service.GetTask
	updateTask   = service.UpdateTask
	removeTask   = service.RemoveTask
	completeTask = service.CompleteTask
)

// ownerID 取出 Auth Gate 放入 context 的呼叫者身分；owner 一律由此而來，絕不採用客戶端輸入
func ownerID(c echo.Context) (int, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

func taskID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("task_id"))
}

func writeTaskErr(c echo.Context, err error) error {
	if errors.Is(err, service.ErrTaskNotFound) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
}

// @Summary     Create a new task
// @Description 為當前使用者建立任務；狀態一律初始化為 pending
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       request body api.CreateTaskRequest true "任務內容"
// @Success     201 {object} api.TaskResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := ownerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		task, err := createTask(c.Request().Context(), db, owner, req.Title, req.Description)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.NewTaskResponse(*task))
	}
}

// @Summary     List tasks
// @Description 分頁列出當前使用者的任務，可依狀態過濾
// @Tags        tasks
// @Produce     json
// @Param       status query string false "任務狀態" Enums(pending, completed)
// @Param       page   query int    false "頁碼 (>=1)"
// @Param       limit  query int    false "每頁筆數 (1-100)"
// @Success     200 {object} api.TaskListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := ownerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.ListTasksRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		query := service.TaskQuery{Page: req.Page, Limit: req.Limit}
		if req.Status != "" {
			status := model.TaskStatus(req.Status)
			query.Status = &status
		}

		list, err := listTasks(c.Request().Context(), db, owner, query)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.TaskListResponse{
			Tasks: make([]api.TaskResponse, 0, len(list.Tasks)),
			Pagination: api.Pagination{
				Page:       list.Page,
				Limit:      list.Limit,
				Total:      list.Total,
				TotalPages: list.TotalPages,
			},
		}
		for _, t := range list.Tasks {
			resp.Tasks = append(resp.Tasks, api.NewTaskResponse(t))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a task by ID
// @Description 取得當前使用者的單一任務；不存在或非本人擁有一律回傳 404
// @Tags        tasks
// @Produce     json
// @Param       task_id path int true "任務 ID"
// @Success     200 {object} api.TaskResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks/{task_id} [get]
func GetTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := ownerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid task ID"})
		}

		task, err := getTask(c.Request().Context(), db, id, owner)
		if err != nil {
			return writeTaskErr(c, err)
		}
		return c.JSON(http.StatusOK, api.NewTaskResponse(*task))
	}
}

// @Summary     Update a task
// @Description 部分更新任務；缺漏欄位維持原值
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       task_id path int true "任務 ID"
// @Param       request body api.UpdateTaskRequest true "變更內容"
// @Success     200 {object} api.TaskResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks/{task_id} [put]
func UpdateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := ownerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid task ID"})
		}

		var req api.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		patch := service.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
		}
		if req.Status != nil {
			status := model.TaskStatus(*req.Status)
			patch.Status = &status
		}

		task, err := updateTask(c.Request().Context(), db, id, owner, patch)
		if err != nil {
			return writeTaskErr(c, err)
		}
		return c.JSON(http.StatusOK, api.NewTaskResponse(*task))
	}
}

// @Summary     Mark a task as completed
// @Description 僅將狀態改為 completed，其餘欄位不變
// @Tags        tasks
// @Produce     json
// @Param       task_id path int true "任務 ID"
// @Success     200 {object} api.TaskResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks/{task_id}/complete [patch]
func CompleteTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := ownerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid task ID"})
		}

		task, err := completeTask(c.Request().Context(), db, id, owner)
		if err != nil {
			return writeTaskErr(c, err)
		}
		return c.JSON(http.StatusOK, api.NewTaskResponse(*task))
	}
}

// @Summary     Delete a task
// @Description 刪除當前使用者的任務
// @Tags        tasks
// @Produce     json
// @Param       task_id path int true "任務 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks/{task_id} [delete]
func DeleteTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := ownerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid task ID"})
		}

		if err := removeTask(c.Request().Context(), db, id, owner); err != nil {
			return writeTaskErr(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Task deleted successfully"})
	}
}
