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

// LocationRepository handles database operations for campus map locations
type LocationRepository struct {
	db *pgxpool.Pool
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{
		db: db,
	}
}

// Create inserts a new campus location
func (r *LocationRepository) Create(ctx context.Context, l *models.CampusLocation) error {
	query := `
		INSERT INTO campus_locations (name, description, category, latitude, longitude, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		l.Name,
		l.Description,
		l.Category,
		l.Latitude,
		l.Longitude,
		l.ImageURL,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("error creating location: %w", err)
	}

	return nil
}

// GetByID retrieves one location
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.CampusLocation, error) {
	query := `
		SELECT id, name, description, category, latitude, longitude, image_url
		FROM campus_locations
		WHERE id = $1
	`

	var l models.CampusLocation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.Category,
		&l.Latitude,
		&l.Longitude,
		&l.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("location not found")
		}
		return nil, fmt.Errorf("error retrieving location: %w", err)
	}

	return &l, nil
}

// List retrieves all locations ordered by name
func (r *LocationRepository) List(ctx context.Context) ([]*models.CampusLocation, error) {
	return r.query(ctx, `
		SELECT id, name, description, category, latitude, longitude, image_url
		FROM campus_locations
		ORDER BY name ASC
	`)
}

// Search retrieves locations whose names contain the query, case-insensitive
func (r *LocationRepository) Search(ctx context.Context, q string) ([]*models.CampusLocation, error) {
	return r.query(ctx, `
		SELECT id, name, description, category, latitude, longitude, image_url
		FROM campus_locations
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
	`, q)
}

func (r *LocationRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.CampusLocation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.CampusLocation
	for rows.Next() {
		var l models.CampusLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Category, &l.Latitude, &l.Longitude, &l.ImageURL); err != nil {
			return nil, fmt.Errorf("error scanning location: %w", err)
		}
		locations = append(locations, &l)
	}

	return locations, rows.Err()
}

// Delete removes a location
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campus_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("location not found")
	}
	return nil
}
