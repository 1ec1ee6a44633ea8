package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// TaskService handles personal task lists. Every operation is scoped to the
// acting user; another user's task id behaves as if it does not exist.
type TaskService struct {
	taskRepo *repositories.TaskRepository
}

// NewTaskService creates a new task service instance
func NewTaskService(taskRepo *repositories.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create adds a task for the acting user
func (s *TaskService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateTaskRequest) (*models.Task, error) {
	category := req.Category
	if category == "" {
		category = "personal"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	t := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Category:    category,
		Status:      models.TaskTodo,
		Priority:    priority,
		UserID:      actor.ID,
	}
	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the acting user's tasks, optionally filtered
func (s *TaskService) List(ctx context.Context, actor policy.Actor, filter repositories.TaskFilter) ([]*models.Task, error) {
	return s.taskRepo.List(ctx, actor.ID, filter)
}

// Update applies a partial update to the acting user's task
func (s *TaskService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateTaskRequest) (*models.Task, error) {
	t, err := s.taskRepo.GetByIDForUser(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			return nil, apperrors.NewValidationError("invalid task status")
		}
		t.Status = *req.Status
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the acting user's task
func (s *TaskService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	return s.taskRepo.Delete(ctx, id, actor.ID)
}
