package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/dberrors"
)

// ClubRepository handles database operations for clubs, memberships, events
// and club announcements
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

// Create inserts a new club
func (r *ClubRepository) Create(ctx context.Context, c *models.Club) error {
	query := `
		INSERT INTO clubs (name, description, category, logo_url, lead_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, c.Name, c.Description, c.Category, c.LogoURL, c.LeadID).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return uniqueAs(err, apperrors.NewConflictError("club with this name already exists"), "error creating club")
	}

	return nil
}

// GetByID retrieves a club with its lead name and member count
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	query := `
		SELECT c.id, c.name, c.description, c.category, c.logo_url, c.lead_id, c.created_at, u.name,
		       (SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id)
		FROM clubs c
		JOIN users u ON u.id = c.lead_id
		WHERE c.id = $1
	`

	var c models.Club
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Category,
		&c.LogoURL,
		&c.LeadID,
		&c.CreatedAt,
		&c.LeadName,
		&c.MemberCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("club not found")
		}
		return nil, fmt.Errorf("error retrieving club: %w", err)
	}

	return &c, nil
}

// List retrieves all clubs with member counts and lead names
func (r *ClubRepository) List(ctx context.Context) ([]*models.Club, error) {
	query := `
		SELECT c.id, c.name, c.description, c.category, c.logo_url, c.lead_id, c.created_at, u.name,
		       (SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id)
		FROM clubs c
		JOIN users u ON u.id = c.lead_id
		ORDER BY c.name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.Category,
			&c.LogoURL,
			&c.LeadID,
			&c.CreatedAt,
			&c.LeadName,
			&c.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning club: %w", err)
		}
		clubs = append(clubs, &c)
	}

	return clubs, rows.Err()
}

// Delete removes a club; memberships, events and announcements cascade
func (r *ClubRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("club not found")
	}
	return nil
}

// IsMember reports whether a user belongs to a club
func (r *ClubRepository) IsMember(ctx context.Context, clubID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM club_members WHERE club_id = $1 AND user_id = $2)`
	if err := r.db.QueryRow(ctx, query, clubID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking membership: %w", err)
	}
	return exists, nil
}

// AddMember creates a membership row with role member
func (r *ClubRepository) AddMember(ctx context.Context, m *models.ClubMember) error {
	query := `
		INSERT INTO club_members (club_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`

	err := r.db.QueryRow(ctx, query, m.ClubID, m.UserID, m.Role).Scan(&m.ID, &m.JoinedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Racing join; the caller treats it as already-a-member
			return nil
		}
		return fmt.Errorf("error adding club member: %w", err)
	}

	return nil
}

// CreateEvent inserts a club event
func (r *ClubRepository) CreateEvent(ctx context.Context, e *models.ClubEvent) error {
	query := `
		INSERT INTO club_events (club_id, title, description, event_date, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, e.ClubID, e.Title, e.Description, e.EventDate, e.Location).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating club event: %w", err)
	}

	return nil
}

// ListEvents retrieves a club's events date ascending
func (r *ClubRepository) ListEvents(ctx context.Context, clubID int64) ([]*models.ClubEvent, error) {
	query := `
		SELECT id, club_id, title, description, event_date, location, created_at
		FROM club_events
		WHERE club_id = $1
		ORDER BY event_date ASC
	`

	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("error listing club events: %w", err)
	}
	defer rows.Close()

	var events []*models.ClubEvent
	for rows.Next() {
		var e models.ClubEvent
		if err := rows.Scan(&e.ID, &e.ClubID, &e.Title, &e.Description, &e.EventDate, &e.Location, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning club event: %w", err)
		}
		events = append(events, &e)
	}

	return events, rows.Err()
}

// CreateAnnouncement inserts a club-scoped announcement
func (r *ClubRepository) CreateAnnouncement(ctx context.Context, a *models.ClubAnnouncement) error {
	query := `
		INSERT INTO club_announcements (club_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, a.ClubID, a.Title, a.Content).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating club announcement: %w", err)
	}

	return nil
}

// ListAnnouncements retrieves a club's announcements newest first
func (r *ClubRepository) ListAnnouncements(ctx context.Context, clubID int64) ([]*models.ClubAnnouncement, error) {
	query := `
		SELECT id, club_id, title, content, created_at
		FROM club_announcements
		WHERE club_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("error listing club announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.ClubAnnouncement
	for rows.Next() {
		var a models.ClubAnnouncement
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning club announcement: %w", err)
		}
		announcements = append(announcements, &a)
	}

	return announcements, rows.Err()
}
