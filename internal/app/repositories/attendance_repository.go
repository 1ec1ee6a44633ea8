package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aegisone/campus/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Upsert records a mark for (student, course, date); a second mark on the
// same day overwrites the status instead of inserting a new row
func (r *AttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) error {
	query := `
		INSERT INTO attendance_records (student_id, course_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT attendance_student_course_date_key
		DO UPDATE SET status = EXCLUDED.status
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, a.StudentID, a.CourseID, a.Date, a.Status).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error upserting attendance: %w", err)
	}

	return nil
}

// ListByStudent retrieves a student's attendance records, optionally for one
// course, newest first, with course projections
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64, courseID *int64) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.course_id, a.date, a.status, a.created_at, c.name, c.code
		FROM attendance_records a
		JOIN courses c ON c.id = a.course_id
		WHERE a.student_id = $1
	`
	args := []interface{}{studentID}

	if courseID != nil {
		args = append(args, *courseID)
		query += fmt.Sprintf(" AND a.course_id = $%d", len(args))
	}
	query += " ORDER BY a.date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var date time.Time
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &date, &a.Status, &a.CreatedAt, &a.CourseName, &a.CourseCode); err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		a.Date = date
		records = append(records, &a)
	}

	return records, rows.Err()
}

// CourseTotals holds raw per-course attendance counts for one student
type CourseTotals struct {
	CourseID   int64
	CourseName string
	CourseCode string
	Total      int
	Present    int
}

// TotalsByStudent aggregates attendance per enrolled course. Courses with no
// marks yet still appear, with zero totals.
func (r *AttendanceRepository) TotalsByStudent(ctx context.Context, studentID int64) ([]CourseTotals, error) {
	query := `
		SELECT c.id, c.name, c.code,
		       COUNT(a.id),
		       COUNT(a.id) FILTER (WHERE a.status = 'present')
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		LEFT JOIN attendance_records a ON a.course_id = c.id AND a.student_id = e.student_id
		WHERE e.student_id = $1
		GROUP BY c.id, c.name, c.code
		ORDER BY c.code ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error aggregating attendance: %w", err)
	}
	defer rows.Close()

	var totals []CourseTotals
	for rows.Next() {
		var t CourseTotals
		if err := rows.Scan(&t.CourseID, &t.CourseName, &t.CourseCode, &t.Total, &t.Present); err != nil {
			return nil, fmt.Errorf("error scanning attendance totals: %w", err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}
