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

// ItemFilter narrows lost-and-found listings
type ItemFilter struct {
	Category *string
	ItemType *string
	Status   *models.ItemStatus
}

// LostFoundRepository handles database operations for lost-and-found items
type LostFoundRepository struct {
	db *pgxpool.Pool
}

// NewLostFoundRepository creates a new lost-and-found repository
func NewLostFoundRepository(db *pgxpool.Pool) *LostFoundRepository {
	return &LostFoundRepository{
		db: db,
	}
}

const itemSelect = `
	SELECT i.id, i.title, i.description, i.image_url, i.location, i.category, i.item_type,
	       i.status, i.posted_by, i.claimed_by, i.created_at, u.name
	FROM lostfound_items i
	JOIN users u ON u.id = i.posted_by
`

func scanItem(row pgx.Row) (*models.LostFoundItem, error) {
	var i models.LostFoundItem
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.ImageURL,
		&i.Location,
		&i.Category,
		&i.ItemType,
		&i.Status,
		&i.PostedBy,
		&i.ClaimedBy,
		&i.CreatedAt,
		&i.PosterName,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts a new item
func (r *LostFoundRepository) Create(ctx context.Context, i *models.LostFoundItem) error {
	query := `
		INSERT INTO lostfound_items (title, description, image_url, location, category, item_type, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		i.Title,
		i.Description,
		i.ImageURL,
		i.Location,
		i.Category,
		i.ItemType,
		i.PostedBy,
	).Scan(&i.ID, &i.Status, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating item: %w", err)
	}

	return nil
}

// GetByID retrieves an item with its poster name
func (r *LostFoundRepository) GetByID(ctx context.Context, id int64) (*models.LostFoundItem, error) {
	i, err := scanItem(r.db.QueryRow(ctx, itemSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("error retrieving item: %w", err)
	}
	return i, nil
}

// List retrieves items newest first with optional filters
func (r *LostFoundRepository) List(ctx context.Context, filter ItemFilter) ([]*models.LostFoundItem, error) {
	query := itemSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND i.category = $%d", len(args))
	}
	if filter.ItemType != nil {
		args = append(args, *filter.ItemType)
		query += fmt.Sprintf(" AND i.item_type = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	query += " ORDER BY i.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	defer rows.Close()

	var items []*models.LostFoundItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning item: %w", err)
		}
		items = append(items, i)
	}

	return items, rows.Err()
}

// UpdateStatus persists a status change, including claimed_by when claiming
func (r *LostFoundRepository) UpdateStatus(ctx context.Context, i *models.LostFoundItem) error {
	query := `
		UPDATE lostfound_items
		SET status = $1, claimed_by = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, i.Status, i.ClaimedBy, i.ID)
	if err != nil {
		return fmt.Errorf("error updating item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}

	return nil
}

// Delete removes an item
func (r *LostFoundRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lostfound_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}
