package models

import "time"

// TaskStatus defines personal task progress states
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatus reports whether s is a known task status
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task defines a personal task list entry, strictly owner-scoped
type Task struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`
	Category    string     `json:"category" db:"category"` // assignment, project, personal, exam_prep
	Status      TaskStatus `json:"status" db:"status"`
	Priority    string     `json:"priority" db:"priority"` // low, medium, high
	UserID      int64      `json:"userId" db:"user_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
