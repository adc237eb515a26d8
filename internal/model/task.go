package model

import "time"

// Task represents a unit of work owned by a user. UserID is set at creation
// and never changes; every lookup filters by (id, user_id) jointly.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskRequest represents a task creation request body.
type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left
// unchanged.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
