// File: internal/service/task.go
package service

import (
	"context"
	"errors"

	"taskdeck/internal/database"
	"taskdeck/internal/model"
	"taskdeck/internal/store"

	"github.com/jackc/pgx/v5"
)

// ErrTaskNotFound 任務不存在或不屬於呼叫者，兩種情況對呼叫端不可區分
var ErrTaskNotFound = errors.New("task not found")

// 測試可覆寫下列變數
var (
	createTask = store.CreateTask
	getTask    = store.GetTaskByID
	listTasks  = store.ListTasks
	countTasks = store.CountTasks
	updateTask = store.UpdateTask
	deleteTask = store.DeleteTask
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TaskPatch 部分更新內容；nil 欄位表示不變動
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
}

// ApplyTaskPatch 純函式：套用 patch 產生新的任務狀態，不改動輸入
func ApplyTaskPatch(t model.Task, p TaskPatch) model.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}

// TaskQuery 列表查詢條件
type TaskQuery struct {
	Status *model.TaskStatus
	Page   int
	Limit  int
}

// TaskList 分頁後的任務列表
type TaskList struct {
	Tasks      []model.Task
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func mapTaskErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTaskNotFound
	}
	return err
}

// CreateTask 建立任務；狀態一律初始化為 pending，description 為可選
func CreateTask(ctx context.Context, db database.DB, ownerID int, title string, description *string) (*model.Task, error) {
	return createTask(ctx, db, &model.Task{
		Title:       title,
		Description: description,
		Status:      model.TaskStatusPending,
		OwnerID:     ownerID,
	})
}

// ListTasks 列出呼叫者的任務並計算分頁
// page 預設 1、limit 預設 10，offset = (page-1)*limit
func ListTasks(ctx context.Context, db database.DB, ownerID int, q TaskQuery) (*TaskList, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	tasks, err := listTasks(ctx, db, ownerID, q.Status, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := countTasks(ctx, db, ownerID, q.Status)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return &TaskList{
		Tasks:      tasks,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// GetTask 取得單一任務，僅限擁有者
func GetTask(ctx context.Context, db database.DB, taskID, ownerID int) (*model.Task, error) {
	task, err := getTask(ctx, db, taskID, ownerID)
	if err != nil {
		return nil, mapTaskErr(err)
	}
	return task, nil
}

// UpdateTask 先解析既有任務再套用 patch，最後以單一寫入持久化
func UpdateTask(ctx context.Context, db database.DB, taskID, ownerID int, patch TaskPatch) (*model.Task, error) {
	task, err := getTask(ctx, db, taskID, ownerID)
	if err != nil {
		return nil, mapTaskErr(err)
	}

	next := ApplyTaskPatch(*task, patch)
	updated, err := updateTask(ctx, db, &next)
	if err != nil {
		return nil, mapTaskErr(err)
	}
	return updated, nil
}

// RemoveTask 先解析再刪除；不存在與非擁有者同樣回傳 ErrTaskNotFound
func RemoveTask(ctx context.Context, db database.DB, taskID, ownerID int) error {
	if _, err := getTask(ctx, db, taskID, ownerID); err != nil {
		return mapTaskErr(err)
	}
	return deleteTask(ctx, db, taskID, ownerID)
}

// CompleteTask 等同僅變更狀態為 completed 的 UpdateTask
func CompleteTask(ctx context.Context, db database.DB, taskID, ownerID int) (*model.Task, error) {
	status := model.TaskStatusCompleted
	return UpdateTask(ctx, db, taskID, ownerID, TaskPatch{Status: &status})
}
