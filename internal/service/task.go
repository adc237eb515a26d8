package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tellis/tellis-go/internal/apperr"
	"github.com/tellis/tellis-go/internal/model"
	"github.com/tellis/tellis-go/internal/repository"
)

// TaskService handles task business logic. The userID parameter on every
// method is the authenticated identity from the auth gate; it is the only
// scope applied to data access.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create creates a task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID string, req model.CreateTaskRequest) (*model.Task, error) {
	if req.Name == "" || req.Description == "" {
		return nil, apperr.New(apperr.Validation, "Name and description are required")
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	return task, nil
}

// List returns all tasks owned by userID.
func (s *TaskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return tasks, nil
}

// Get returns the task only if userID owns it. A foreign or missing task id
// reports NotFound either way, so task existence never leaks across users.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := s.repo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperr.New(apperr.NotFound, "Task not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return task, nil
}

// Update applies the non-nil fields of req to the task owned by userID.
// Owner and id never change.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req model.UpdateTaskRequest) (*model.Task, error) {
	if req.Name == nil && req.Description == nil {
		return nil, apperr.New(apperr.Validation, "Nothing to update")
	}

	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperr.New(apperr.NotFound, "Task not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	return task, nil
}

// Delete removes the task owned by userID.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.Delete(ctx, userID, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return apperr.New(apperr.NotFound, "Task not found")
		}
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}
