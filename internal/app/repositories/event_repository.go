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

// EventFilter narrows academic calendar listings
type EventFilter struct {
	EventType *string
	CourseID  *int64
}

// EventRepository handles database operations for academic calendar events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new academic event
func (r *EventRepository) Create(ctx context.Context, e *models.AcademicEvent) error {
	query := `
		INSERT INTO academic_events (title, description, event_date, event_type, course_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		e.Title,
		e.Description,
		e.EventDate,
		e.EventType,
		e.CourseID,
		e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic event: %w", err)
	}

	return nil
}

// GetByID retrieves an event with course and creator projections
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.AcademicEvent, error) {
	query := `
		SELECT e.id, e.title, e.description, e.event_date, e.event_type, e.course_id,
		       e.created_by, e.created_at, c.name, u.name
		FROM academic_events e
		LEFT JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = e.created_by
		WHERE e.id = $1
	`

	var e models.AcademicEvent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventDate,
		&e.EventType,
		&e.CourseID,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.CourseName,
		&e.CreatorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("event not found")
		}
		return nil, fmt.Errorf("error retrieving academic event: %w", err)
	}

	return &e, nil
}

// List retrieves events date ascending with optional type and course filters
func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]*models.AcademicEvent, error) {
	query := `
		SELECT e.id, e.title, e.description, e.event_date, e.event_type, e.course_id,
		       e.created_by, e.created_at, c.name, u.name
		FROM academic_events e
		LEFT JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = e.created_by
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.EventType != nil {
		args = append(args, *filter.EventType)
		query += fmt.Sprintf(" AND e.event_type = $%d", len(args))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		query += fmt.Sprintf(" AND e.course_id = $%d", len(args))
	}
	query += " ORDER BY e.event_date ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing academic events: %w", err)
	}
	defer rows.Close()

	var events []*models.AcademicEvent
	for rows.Next() {
		var e models.AcademicEvent
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.EventDate,
			&e.EventType,
			&e.CourseID,
			&e.CreatedBy,
			&e.CreatedAt,
			&e.CourseName,
			&e.CreatorName,
		); err != nil {
			return nil, fmt.Errorf("error scanning academic event: %w", err)
		}
		events = append(events, &e)
	}

	return events, rows.Err()
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM academic_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("event not found")
	}
	return nil
}
