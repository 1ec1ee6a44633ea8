package dto

import (
	"time"

	"github.com/aegisone/campus/internal/app/models"
)

// CreateTaskRequest represents a new personal task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category" binding:"omitempty,oneof=assignment project personal exam_prep"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest represents a task update; all fields optional
type UpdateTaskRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	Category    *string            `json:"category,omitempty" binding:"omitempty,oneof=assignment project personal exam_prep"`
	Status      *models.TaskStatus `json:"status,omitempty"`
	Priority    *string            `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
}
