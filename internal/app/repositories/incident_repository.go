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

// IncidentRepository handles database operations for emergency incidents
type IncidentRepository struct {
	db *pgxpool.Pool
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Create inserts a new SOS incident
func (r *IncidentRepository) Create(ctx context.Context, i *models.Incident) error {
	query := `
		INSERT INTO incidents (user_id, description, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query, i.UserID, i.Description, i.Latitude, i.Longitude).
		Scan(&i.ID, &i.Status, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating incident: %w", err)
	}

	return nil
}

// GetByID retrieves an incident with its reporter name
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `
		SELECT i.id, i.user_id, i.description, i.latitude, i.longitude, i.status,
		       i.created_at, i.resolved_at, i.resolution_notes, u.name
		FROM incidents i
		JOIN users u ON u.id = i.user_id
		WHERE i.id = $1
	`

	var i models.Incident
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID,
		&i.UserID,
		&i.Description,
		&i.Latitude,
		&i.Longitude,
		&i.Status,
		&i.CreatedAt,
		&i.ResolvedAt,
		&i.ResolutionNotes,
		&i.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("incident not found")
		}
		return nil, fmt.Errorf("error retrieving incident: %w", err)
	}

	return &i, nil
}

// List retrieves incidents newest first
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT i.id, i.user_id, i.description, i.latitude, i.longitude, i.status,
		       i.created_at, i.resolved_at, i.resolution_notes, u.name
		FROM incidents i
		JOIN users u ON u.id = i.user_id
		ORDER BY i.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*models.Incident
	for rows.Next() {
		var i models.Incident
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Description,
			&i.Latitude,
			&i.Longitude,
			&i.Status,
			&i.CreatedAt,
			&i.ResolvedAt,
			&i.ResolutionNotes,
			&i.UserName,
		); err != nil {
			return nil, fmt.Errorf("error scanning incident: %w", err)
		}
		incidents = append(incidents, &i)
	}

	return incidents, rows.Err()
}

// Update persists status, resolution timestamp and notes
func (r *IncidentRepository) Update(ctx context.Context, i *models.Incident) error {
	query := `
		UPDATE incidents
		SET status = $1, resolved_at = $2, resolution_notes = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, i.Status, i.ResolvedAt, i.ResolutionNotes, i.ID)
	if err != nil {
		return fmt.Errorf("error updating incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("incident not found")
	}

	return nil
}
