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

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, category, pinned, posted_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, a.Title, a.Content, a.Category, a.Pinned, a.PostedBy).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// GetByID retrieves an announcement with its poster name
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `
		SELECT a.id, a.title, a.content, a.category, a.pinned, a.posted_by, a.created_at, u.name
		FROM announcements a
		JOIN users u ON u.id = a.posted_by
		WHERE a.id = $1
	`

	var a models.Announcement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Category,
		&a.Pinned,
		&a.PostedBy,
		&a.CreatedAt,
		&a.PosterName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("announcement not found")
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	return &a, nil
}

// List retrieves announcements pinned-first then newest, optionally by category
func (r *AnnouncementRepository) List(ctx context.Context, category *string) ([]*models.Announcement, error) {
	query := `
		SELECT a.id, a.title, a.content, a.category, a.pinned, a.posted_by, a.created_at, u.name
		FROM announcements a
		JOIN users u ON u.id = a.posted_by
		WHERE 1=1
	`
	args := []interface{}{}

	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND a.category = $%d", len(args))
	}
	query += " ORDER BY a.pinned DESC, a.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Content,
			&a.Category,
			&a.Pinned,
			&a.PostedBy,
			&a.CreatedAt,
			&a.PosterName,
		); err != nil {
			return nil, fmt.Errorf("error scanning announcement: %w", err)
		}
		announcements = append(announcements, &a)
	}

	return announcements, rows.Err()
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("announcement not found")
	}
	return nil
}
