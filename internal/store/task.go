package store

import (
	"context"
	"fmt"

	"taskdeck/internal/database"
	"taskdeck/internal/model"
)

// 所有任務查詢皆以 owner_id 限定範圍；非擁有者與不存在一律回傳 pgx.ErrNoRows

func CreateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.Title,
		t.Description,
		t.Status,
		t.OwnerID,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

func GetTaskByID(ctx context.Context, db database.DB, taskID, ownerID int) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, status, owner_id, created_at, updated_at
		 FROM tasks WHERE id = $1 AND owner_id = $2`,
		taskID,
		ownerID,
	)
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.OwnerID,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetTaskByID: %w", err)
	}
	return t, nil
}

// ListTasks 依建立時間新到舊列出任務，同秒建立者依插入順序
func ListTasks(ctx context.Context, db database.DB, ownerID int, status *model.TaskStatus, limit, offset int) ([]model.Task, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, status, owner_id, created_at, updated_at
		 FROM tasks
		 WHERE owner_id = $1 AND ($2::text IS NULL OR status = $2)
		 ORDER BY created_at DESC, id ASC
		 LIMIT $3 OFFSET $4`,
		ownerID,
		status,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.OwnerID,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListTasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	return tasks, nil
}

// CountTasks 回傳符合條件的任務總數（忽略分頁）
func CountTasks(ctx context.Context, db database.DB, ownerID int, status *model.TaskStatus) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks
		 WHERE owner_id = $1 AND ($2::text IS NULL OR status = $2)`,
		ownerID,
		status,
	)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountTasks: %w", err)
	}
	return total, nil
}

// UpdateTask 以單一語句寫回整列並更新 updated_at
func UpdateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, status = $3, updated_at = now()
		 WHERE id = $4 AND owner_id = $5
		 RETURNING updated_at`,
		t.Title,
		t.Description,
		t.Status,
		t.ID,
		t.OwnerID,
	)
	if err := row.Scan(&t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateTask: %w", err)
	}
	return t, nil
}

func DeleteTask(ctx context.Context, db database.DB, taskID, ownerID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`,
		taskID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTask: %w", err)
	}
	return nil
}
