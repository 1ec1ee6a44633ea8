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

// ResourceFilter narrows study-resource listings; filters AND together
type ResourceFilter struct {
	CourseCode   *string
	ResourceType *string
	ExamType     *string
}

// ResourceRepository handles database operations for study resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

// Create inserts a new resource
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	query := `
		INSERT INTO resources (title, description, file_url, course_code, year, exam_type, resource_type, tags, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		res.Title,
		res.Description,
		res.FileURL,
		res.CourseCode,
		res.Year,
		res.ExamType,
		res.ResourceType,
		res.Tags,
		res.UploadedBy,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// GetByID retrieves a resource with its uploader name
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := `
		SELECT r.id, r.title, r.description, r.file_url, r.course_code, r.year, r.exam_type,
		       r.resource_type, r.tags, r.uploaded_by, r.created_at, u.name
		FROM resources r
		JOIN users u ON u.id = r.uploaded_by
		WHERE r.id = $1
	`

	var res models.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.Title,
		&res.Description,
		&res.FileURL,
		&res.CourseCode,
		&res.Year,
		&res.ExamType,
		&res.ResourceType,
		&res.Tags,
		&res.UploadedBy,
		&res.CreatedAt,
		&res.UploaderName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("resource not found")
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}

	return &res, nil
}

// List retrieves resources newest first, filters ANDed together
func (r *ResourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	query := `
		SELECT r.id, r.title, r.description, r.file_url, r.course_code, r.year, r.exam_type,
		       r.resource_type, r.tags, r.uploaded_by, r.created_at, u.name
		FROM resources r
		JOIN users u ON u.id = r.uploaded_by
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.CourseCode != nil {
		args = append(args, *filter.CourseCode)
		query += fmt.Sprintf(" AND r.course_code = $%d", len(args))
	}
	if filter.ResourceType != nil {
		args = append(args, *filter.ResourceType)
		query += fmt.Sprintf(" AND r.resource_type = $%d", len(args))
	}
	if filter.ExamType != nil {
		args = append(args, *filter.ExamType)
		query += fmt.Sprintf(" AND r.exam_type = $%d", len(args))
	}
	query += " ORDER BY r.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID,
			&res.Title,
			&res.Description,
			&res.FileURL,
			&res.CourseCode,
			&res.Year,
			&res.ExamType,
			&res.ResourceType,
			&res.Tags,
			&res.UploadedBy,
			&res.CreatedAt,
			&res.UploaderName,
		); err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, &res)
	}

	return resources, rows.Err()
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("resource not found")
	}
	return nil
}
