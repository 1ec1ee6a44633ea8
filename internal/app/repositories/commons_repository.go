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

// CommonsRepository handles database operations for ride-share pools and gigs
type CommonsRepository struct {
	db *pgxpool.Pool
}

// NewCommonsRepository creates a new commons repository
func NewCommonsRepository(db *pgxpool.Pool) *CommonsRepository {
	return &CommonsRepository{
		db: db,
	}
}

// CreateCaravan inserts a new ride-share pool
func (r *CommonsRepository) CreateCaravan(ctx context.Context, c *models.CaravanPool) error {
	query := `
		INSERT INTO caravan_pools (destination, origin, travel_date, available_seats, estimated_cost, contact_info, description, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.Destination,
		c.Origin,
		c.TravelDate,
		c.AvailableSeats,
		c.EstimatedCost,
		c.ContactInfo,
		c.Description,
		c.PostedBy,
	).Scan(&c.ID, &c.Status, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating caravan pool: %w", err)
	}

	return nil
}

// GetCaravanByID retrieves a pool with its poster name
func (r *CommonsRepository) GetCaravanByID(ctx context.Context, id int64) (*models.CaravanPool, error) {
	query := `
		SELECT c.id, c.destination, c.origin, c.travel_date, c.available_seats, c.estimated_cost,
		       c.contact_info, c.description, c.status, c.posted_by, c.created_at, u.name
		FROM caravan_pools c
		JOIN users u ON u.id = c.posted_by
		WHERE c.id = $1
	`

	var c models.CaravanPool
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Destination,
		&c.Origin,
		&c.TravelDate,
		&c.AvailableSeats,
		&c.EstimatedCost,
		&c.ContactInfo,
		&c.Description,
		&c.Status,
		&c.PostedBy,
		&c.CreatedAt,
		&c.PosterName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("caravan pool not found")
		}
		return nil, fmt.Errorf("error retrieving caravan pool: %w", err)
	}

	return &c, nil
}

// ListCaravans retrieves pools by travel date ascending
func (r *CommonsRepository) ListCaravans(ctx context.Context) ([]*models.CaravanPool, error) {
	query := `
		SELECT c.id, c.destination, c.origin, c.travel_date, c.available_seats, c.estimated_cost,
		       c.contact_info, c.description, c.status, c.posted_by, c.created_at, u.name
		FROM caravan_pools c
		JOIN users u ON u.id = c.posted_by
		ORDER BY c.travel_date ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing caravan pools: %w", err)
	}
	defer rows.Close()

	var pools []*models.CaravanPool
	for rows.Next() {
		var c models.CaravanPool
		if err := rows.Scan(
			&c.ID,
			&c.Destination,
			&c.Origin,
			&c.TravelDate,
			&c.AvailableSeats,
			&c.EstimatedCost,
			&c.ContactInfo,
			&c.Description,
			&c.Status,
			&c.PostedBy,
			&c.CreatedAt,
			&c.PosterName,
		); err != nil {
			return nil, fmt.Errorf("error scanning caravan pool: %w", err)
		}
		pools = append(pools, &c)
	}

	return pools, rows.Err()
}

// UpdateCaravanStatus persists a pool status change
func (r *CommonsRepository) UpdateCaravanStatus(ctx context.Context, id int64, status models.CaravanStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE caravan_pools SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating caravan pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("caravan pool not found")
	}
	return nil
}

// CreateGig inserts a new freelance gig
func (r *CommonsRepository) CreateGig(ctx context.Context, g *models.MercenaryGig) error {
	query := `
		INSERT INTO mercenary_gigs (title, description, category, budget, required_skills, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		g.Title,
		g.Description,
		g.Category,
		g.Budget,
		g.RequiredSkills,
		g.PostedBy,
	).Scan(&g.ID, &g.Status, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating gig: %w", err)
	}

	return nil
}

// GetGigByID retrieves a gig with its poster name
func (r *CommonsRepository) GetGigByID(ctx context.Context, id int64) (*models.MercenaryGig, error) {
	query := `
		SELECT g.id, g.title, g.description, g.category, g.budget, g.required_skills,
		       g.status, g.posted_by, g.assigned_to, g.rating, g.review_content, g.created_at, u.name
		FROM mercenary_gigs g
		JOIN users u ON u.id = g.posted_by
		WHERE g.id = $1
	`

	var g models.MercenaryGig
	err := r.db.QueryRow(ctx, query, id).Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.Category,
		&g.Budget,
		&g.RequiredSkills,
		&g.Status,
		&g.PostedBy,
		&g.AssignedTo,
		&g.Rating,
		&g.ReviewContent,
		&g.CreatedAt,
		&g.PosterName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("gig not found")
		}
		return nil, fmt.Errorf("error retrieving gig: %w", err)
	}

	return &g, nil
}

// ListGigs retrieves gigs newest first
func (r *CommonsRepository) ListGigs(ctx context.Context) ([]*models.MercenaryGig, error) {
	query := `
		SELECT g.id, g.title, g.description, g.category, g.budget, g.required_skills,
		       g.status, g.posted_by, g.assigned_to, g.rating, g.review_content, g.created_at, u.name
		FROM mercenary_gigs g
		JOIN users u ON u.id = g.posted_by
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing gigs: %w", err)
	}
	defer rows.Close()

	var gigs []*models.MercenaryGig
	for rows.Next() {
		var g models.MercenaryGig
		if err := rows.Scan(
			&g.ID,
			&g.Title,
			&g.Description,
			&g.Category,
			&g.Budget,
			&g.RequiredSkills,
			&g.Status,
			&g.PostedBy,
			&g.AssignedTo,
			&g.Rating,
			&g.ReviewContent,
			&g.CreatedAt,
			&g.PosterName,
		); err != nil {
			return nil, fmt.Errorf("error scanning gig: %w", err)
		}
		gigs = append(gigs, &g)
	}

	return gigs, rows.Err()
}

// UpdateGig persists status, assignment and review changes
func (r *CommonsRepository) UpdateGig(ctx context.Context, g *models.MercenaryGig) error {
	query := `
		UPDATE mercenary_gigs
		SET status = $1, assigned_to = $2, rating = $3, review_content = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query, g.Status, g.AssignedTo, g.Rating, g.ReviewContent, g.ID)
	if err != nil {
		return fmt.Errorf("error updating gig: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("gig not found")
	}

	return nil
}
