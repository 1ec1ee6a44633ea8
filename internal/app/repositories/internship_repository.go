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

// InternshipRepository handles database operations for internships and applications
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
	}
}

// Create inserts a new internship posting
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	query := `
		INSERT INTO internships (title, company, description, location, stipend, role_type, required_skills, duration, deadline, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		i.Title,
		i.Company,
		i.Description,
		i.Location,
		i.Stipend,
		i.RoleType,
		i.RequiredSkills,
		i.Duration,
		i.Deadline,
		i.PostedBy,
	).Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}

	return nil
}

// GetByID retrieves an internship with its poster name
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	query := `
		SELECT i.id, i.title, i.company, i.description, i.location, i.stipend, i.role_type,
		       i.required_skills, i.duration, i.deadline, i.posted_by, i.created_at, u.name
		FROM internships i
		JOIN users u ON u.id = i.posted_by
		WHERE i.id = $1
	`

	var i models.Internship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID,
		&i.Title,
		&i.Company,
		&i.Description,
		&i.Location,
		&i.Stipend,
		&i.RoleType,
		&i.RequiredSkills,
		&i.Duration,
		&i.Deadline,
		&i.PostedBy,
		&i.CreatedAt,
		&i.PosterName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}

	return &i, nil
}

// List retrieves internships newest first with application counts and the
// viewer's application flag, optionally filtered by role type
func (r *InternshipRepository) List(ctx context.Context, viewerID int64, roleType *string) ([]*models.Internship, error) {
	query := `
		SELECT i.id, i.title, i.company, i.description, i.location, i.stipend, i.role_type,
		       i.required_skills, i.duration, i.deadline, i.posted_by, i.created_at, u.name,
		       (SELECT COUNT(*) FROM applications a WHERE a.internship_id = i.id),
		       EXISTS(SELECT 1 FROM applications a WHERE a.internship_id = i.id AND a.student_id = $1)
		FROM internships i
		JOIN users u ON u.id = i.posted_by
		WHERE 1=1
	`
	args := []interface{}{viewerID}

	if roleType != nil {
		args = append(args, *roleType)
		query += fmt.Sprintf(" AND i.role_type = $%d", len(args))
	}
	query += " ORDER BY i.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		var i models.Internship
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Company,
			&i.Description,
			&i.Location,
			&i.Stipend,
			&i.RoleType,
			&i.RequiredSkills,
			&i.Duration,
			&i.Deadline,
			&i.PostedBy,
			&i.CreatedAt,
			&i.PosterName,
			&i.ApplicationCount,
			&i.HasApplied,
		); err != nil {
			return nil, fmt.Errorf("error scanning internship: %w", err)
		}
		internships = append(internships, &i)
	}

	return internships, rows.Err()
}

// Apply creates an application; applying twice is a conflict
func (r *InternshipRepository) Apply(ctx context.Context, a *models.Application) error {
	query := `
		INSERT INTO applications (student_id, internship_id, resume_url)
		VALUES ($1, $2, $3)
		RETURNING id, status, applied_at
	`

	err := r.db.QueryRow(ctx, query, a.StudentID, a.InternshipID, a.ResumeURL).
		Scan(&a.ID, &a.Status, &a.AppliedAt)
	if err != nil {
		return uniqueAs(err, apperrors.ErrAlreadyApplied, "error creating application")
	}

	return nil
}

const applicationSelect = `
	SELECT a.id, a.student_id, a.internship_id, a.status, a.resume_url, a.faculty_feedback,
	       a.applied_at, s.name, i.title, i.company
	FROM applications a
	JOIN users s ON s.id = a.student_id
	JOIN internships i ON i.id = a.internship_id
`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.InternshipID,
		&a.Status,
		&a.ResumeURL,
		&a.FacultyFeedback,
		&a.AppliedAt,
		&a.StudentName,
		&a.InternshipTitle,
		&a.Company,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetApplicationByID retrieves one application with projections
func (r *InternshipRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	a, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return a, nil
}

// ListApplicationsByStudent retrieves a student's applications newest first
func (r *InternshipRepository) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	return r.listApplications(ctx, applicationSelect+` WHERE a.student_id = $1 ORDER BY a.applied_at DESC`, studentID)
}

// ListApplicationsByInternship retrieves an internship's applications oldest first
func (r *InternshipRepository) ListApplicationsByInternship(ctx context.Context, internshipID int64) ([]*models.Application, error) {
	return r.listApplications(ctx, applicationSelect+` WHERE a.internship_id = $1 ORDER BY a.applied_at ASC`, internshipID)
}

func (r *InternshipRepository) listApplications(ctx context.Context, query string, arg interface{}) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		applications = append(applications, a)
	}

	return applications, rows.Err()
}

// UpdateApplication persists status and feedback changes
func (r *InternshipRepository) UpdateApplication(ctx context.Context, a *models.Application) error {
	query := `
		UPDATE applications
		SET status = $1, faculty_feedback = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, a.Status, a.FacultyFeedback, a.ID)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// CountByPoster returns internships posted by a user
func (r *InternshipRepository) CountByPoster(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM internships WHERE posted_by = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return count, nil
}

// CountApplicationsByStudent returns a student's application count
func (r *InternshipRepository) CountApplicationsByStudent(ctx context.Context, studentID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE student_id = $1`, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// CountAll returns the total number of internships
func (r *InternshipRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM internships`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return count, nil
}
