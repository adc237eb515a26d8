package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tellis/tellis-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations. Every by-id operation
// keys on (id, user_id) jointly; a task id alone never authorizes access.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task owned by task.UserID.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (id, user_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Name, task.Description, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

// GetByID retrieves the task only if it belongs to userID.
func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	query := `SELECT id, user_id, name, description, created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`

	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.Name, &task.Description,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// ListByUser retrieves all tasks owned by userID, newest first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	query := `SELECT id, user_id, name, description, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Name, &t.Description,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update writes new field values for the task owned by userID.
// Returns ErrTaskNotFound when no owned row matched.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET name = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		task.Name, task.Description, task.UpdatedAt, task.ID, task.UserID,
	)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// Delete removes the task only if it belongs to userID.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
