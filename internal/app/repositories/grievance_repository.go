package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// GrievanceFilter narrows grievance listings
type GrievanceFilter struct {
	Status   *models.GrievanceStatus
	Category *string
	Priority *string
}

// GrievanceRepository handles database operations for grievances
type GrievanceRepository struct {
	db *pgxpool.Pool
}

// NewGrievanceRepository creates a new grievance repository
func NewGrievanceRepository(db *pgxpool.Pool) *GrievanceRepository {
	return &GrievanceRepository{
		db: db,
	}
}

const grievanceSelect = `
	SELECT g.id, g.title, g.description, g.category, g.priority, g.status,
	       g.location, g.image_url, g.is_anonymous, g.submitted_by, g.assigned_to,
	       g.created_at, g.updated_at, s.name, a.name
	FROM grievances g
	JOIN users s ON s.id = g.submitted_by
	LEFT JOIN users a ON a.id = g.assigned_to
`

func scanGrievance(row pgx.Row) (*models.Grievance, error) {
	var g models.Grievance
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.Category,
		&g.Priority,
		&g.Status,
		&g.Location,
		&g.ImageURL,
		&g.IsAnonymous,
		&g.SubmittedBy,
		&g.AssignedTo,
		&g.CreatedAt,
		&g.UpdatedAt,
		&g.SubmitterName,
		&g.AssigneeName,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new grievance
func (r *GrievanceRepository) Create(ctx context.Context, g *models.Grievance) error {
	query := `
		INSERT INTO grievances (title, description, category, priority, location, image_url, is_anonymous, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		g.Title,
		g.Description,
		g.Category,
		g.Priority,
		g.Location,
		g.ImageURL,
		g.IsAnonymous,
		g.SubmittedBy,
	).Scan(&g.ID, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating grievance: %w", err)
	}

	return nil
}

// GetByID retrieves a grievance with submitter and assignee names
func (r *GrievanceRepository) GetByID(ctx context.Context, id int64) (*models.Grievance, error) {
	g, err := scanGrievance(r.db.QueryRow(ctx, grievanceSelect+` WHERE g.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("error retrieving grievance: %w", err)
	}
	return g, nil
}

// List retrieves grievances visible to the actor, newest first.
// Visibility is applied as a query predicate chosen from the policy scope.
func (r *GrievanceRepository) List(ctx context.Context, actor policy.Actor, filter GrievanceFilter) ([]*models.Grievance, error) {
	query := grievanceSelect + ` WHERE 1=1`
	args := []interface{}{}

	switch policy.GrievanceVisibility(actor) {
	case policy.ScopeOwn:
		args = append(args, actor.ID)
		query += fmt.Sprintf(" AND g.submitted_by = $%d", len(args))
	case policy.ScopeAssignedOrUnassigned:
		args = append(args, actor.ID)
		query += fmt.Sprintf(" AND (g.assigned_to = $%d OR g.assigned_to IS NULL)", len(args))
	}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND g.status = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND g.category = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		query += fmt.Sprintf(" AND g.priority = $%d", len(args))
	}
	query += " ORDER BY g.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grievances: %w", err)
	}
	defer rows.Close()

	var grievances []*models.Grievance
	for rows.Next() {
		g, err := scanGrievance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning grievance: %w", err)
		}
		grievances = append(grievances, g)
	}

	return grievances, rows.Err()
}

// Update persists status, assignment and priority changes
func (r *GrievanceRepository) Update(ctx context.Context, g *models.Grievance) error {
	query := `
		UPDATE grievances
		SET status = $1, assigned_to = $2, priority = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, g.Status, g.AssignedTo, g.Priority, g.ID)
	if err != nil {
		return fmt.Errorf("error updating grievance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGrievanceNotFound
	}

	return nil
}

// Delete removes a grievance; its comments go with it via FK cascade
func (r *GrievanceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM grievances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grievance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGrievanceNotFound
	}
	return nil
}

// AddComment appends a timeline comment
func (r *GrievanceRepository) AddComment(ctx context.Context, comment *models.GrievanceComment) error {
	query := `
		INSERT INTO grievance_comments (grievance_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, comment.GrievanceID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error adding grievance comment: %w", err)
	}

	return nil
}

// ListComments retrieves a grievance's comments in chronological order
func (r *GrievanceRepository) ListComments(ctx context.Context, grievanceID int64) ([]*models.GrievanceComment, error) {
	query := `
		SELECT c.id, c.grievance_id, c.user_id, c.content, c.created_at, u.name, u.role
		FROM grievance_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.grievance_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, grievanceID)
	if err != nil {
		return nil, fmt.Errorf("error listing grievance comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.GrievanceComment
	for rows.Next() {
		var c models.GrievanceComment
		if err := rows.Scan(&c.ID, &c.GrievanceID, &c.UserID, &c.Content, &c.CreatedAt, &c.UserName, &c.UserRole); err != nil {
			return nil, fmt.Errorf("error scanning grievance comment: %w", err)
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}

// CountByStatus returns grievance counts grouped by status, optionally
// restricted to one submitter
func (r *GrievanceRepository) CountByStatus(ctx context.Context, submittedBy *int64) (map[models.GrievanceStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM grievances`
	args := []interface{}{}
	if submittedBy != nil {
		query += ` WHERE submitted_by = $1`
		args = append(args, *submittedBy)
	}
	query += ` GROUP BY status`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting grievances: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.GrievanceStatus]int)
	for rows.Next() {
		var status models.GrievanceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning grievance count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// CountAssignedTo returns the number of grievances assigned to a user
func (r *GrievanceRepository) CountAssignedTo(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM grievances WHERE assigned_to = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting assigned grievances: %w", err)
	}
	return count, nil
}
