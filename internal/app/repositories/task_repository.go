package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// TaskFilter narrows personal task listings
type TaskFilter struct {
	Category *string
	Status   *models.TaskStatus
}

// TaskRepository handles database operations for personal tasks.
// Every query is scoped to the owning user; a foreign task id reads as absent.
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) error {
	query := `
		INSERT INTO tasks (title, description, due_date, category, priority, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		t.Title,
		t.Description,
		t.DueDate,
		t.Category,
		t.Priority,
		t.UserID,
	).Scan(&t.ID, &t.Status, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating task: %w", err)
	}

	return nil
}

// GetByIDForUser retrieves a task owned by the given user
func (r *TaskRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Task, error) {
	query := `
		SELECT id, title, description, due_date, category, status, priority, user_id, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var t models.Task
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Category,
		&t.Status,
		&t.Priority,
		&t.UserID,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("error retrieving task: %w", err)
	}

	return &t, nil
}

// List retrieves the user's tasks newest first with optional filters
func (r *TaskRepository) List(ctx context.Context, userID int64, filter TaskFilter) ([]*models.Task, error) {
	query := `
		SELECT id, title, description, due_date, category, status, priority, user_id, created_at
		FROM tasks
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.DueDate,
			&t.Category,
			&t.Status,
			&t.Priority,
			&t.UserID,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning task: %w", err)
		}
		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}

// Update persists all mutable fields of a task owned by the user
func (r *TaskRepository) Update(ctx context.Context, t *models.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, category = $4, status = $5, priority = $6
		WHERE id = $7 AND user_id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		t.Title,
		t.Description,
		t.DueDate,
		t.Category,
		t.Status,
		t.Priority,
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("task not found")
	}

	return nil
}

// Delete removes a task owned by the user
func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("task not found")
	}
	return nil
}

// CountPending returns the user's not-done task count
func (r *TaskRepository) CountPending(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status != 'done'`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting tasks: %w", err)
	}
	return count, nil
}
