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

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, description, semester, credits, course_type, faculty_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Name,
		course.Code,
		course.Description,
		course.Semester,
		course.Credits,
		course.CourseType,
		course.FacultyID,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return uniqueAs(err, apperrors.ErrCourseCodeExists, "error creating course")
	}

	return nil
}

// GetByID retrieves a course with its faculty name
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.code, c.description, c.semester, c.credits, c.course_type,
		       c.faculty_id, c.created_at, u.name
		FROM courses c
		JOIN users u ON u.id = c.faculty_id
		WHERE c.id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Description,
		&course.Semester,
		&course.Credits,
		&course.CourseType,
		&course.FacultyID,
		&course.CreatedAt,
		&course.FacultyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves all courses newest first, with enrollment counts and the
// viewer's enrollment flag
func (r *CourseRepository) List(ctx context.Context, viewerID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.code, c.description, c.semester, c.credits, c.course_type,
		       c.faculty_id, c.created_at, u.name,
		       (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id),
		       EXISTS(SELECT 1 FROM enrollments e WHERE e.course_id = c.id AND e.student_id = $1)
		FROM courses c
		JOIN users u ON u.id = c.faculty_id
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Code,
			&course.Description,
			&course.Semester,
			&course.Credits,
			&course.CourseType,
			&course.FacultyID,
			&course.CreatedAt,
			&course.FacultyName,
			&course.EnrollmentCount,
			&course.IsEnrolled,
		); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, rows.Err()
}

// Enroll adds a student to a course; double enrollment is a conflict
func (r *CourseRepository) Enroll(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, enrolled_at
	`

	err := r.db.QueryRow(ctx, query, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		return uniqueAs(err, apperrors.ErrAlreadyEnrolled, "error creating enrollment")
	}

	return nil
}

// IsEnrolled reports whether a student is enrolled in a course
func (r *CourseRepository) IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`
	if err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// ListEnrollments retrieves a student's enrollments with course projections
func (r *CourseRepository) ListEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.enrolled_at,
		       c.id, c.name, c.code, c.description, c.semester, c.credits, c.course_type,
		       c.faculty_id, c.created_at, u.name
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = c.faculty_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var c models.Course
		if err := rows.Scan(
			&e.ID,
			&e.StudentID,
			&e.CourseID,
			&e.EnrolledAt,
			&c.ID,
			&c.Name,
			&c.Code,
			&c.Description,
			&c.Semester,
			&c.Credits,
			&c.CourseType,
			&c.FacultyID,
			&c.CreatedAt,
			&c.FacultyName,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		e.Course = &c
		enrollments = append(enrollments, &e)
	}

	return enrollments, rows.Err()
}

// CountByFaculty returns the number of courses taught by a faculty member
func (r *CourseRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// CountStudentsForFaculty returns total enrollments across a faculty's courses
func (r *CourseRepository) CountStudentsForFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE c.faculty_id = $1
	`
	if err := r.db.QueryRow(ctx, query, facultyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountEnrollmentsByStudent returns the number of courses a student is enrolled in
func (r *CourseRepository) CountEnrollmentsByStudent(ctx context.Context, studentID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE student_id = $1`, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// CountAll returns the total number of courses
func (r *CourseRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
