package services

import (
	"context"
	"math"
	"time"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// attendanceStore is the slice of the attendance repository the service needs.
type attendanceStore interface {
	Upsert(ctx context.Context, a *models.Attendance) error
	ListByStudent(ctx context.Context, studentID int64, courseID *int64) ([]*models.Attendance, error)
	TotalsByStudent(ctx context.Context, studentID int64) ([]repositories.CourseTotals, error)
}

type enrollmentChecker interface {
	IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error)
}

// AttendanceService handles self-reported per-day attendance marks
type AttendanceService struct {
	attendanceRepo attendanceStore
	courseRepo     enrollmentChecker
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository, courseRepo *repositories.CourseRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		courseRepo:     courseRepo,
	}
}

// Mark records one attendance mark for (student, course, date). Marking the
// same day again overwrites the previous status.
func (s *AttendanceService) Mark(ctx context.Context, actor policy.Actor, req *dto.MarkAttendanceRequest) (*models.Attendance, error) {
	if !policy.Can(actor, policy.ActionAttendanceMark) {
		return nil, apperrors.ErrPermissionDenied
	}
	if !models.ValidAttendanceStatus(req.Status) {
		return nil, apperrors.NewValidationError("status must be present, absent or late")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	enrolled, err := s.courseRepo.IsEnrolled(ctx, actor.ID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	mark := &models.Attendance{
		StudentID: actor.ID,
		CourseID:  req.CourseID,
		Date:      date,
		Status:    req.Status,
	}
	if err := s.attendanceRepo.Upsert(ctx, mark); err != nil {
		return nil, err
	}
	return mark, nil
}

// List returns the acting student's marks, optionally for one course
func (s *AttendanceService) List(ctx context.Context, actor policy.Actor, courseID *int64) ([]*models.Attendance, error) {
	return s.attendanceRepo.ListByStudent(ctx, actor.ID, courseID)
}

// AttendancePercentage computes present/total as a percentage rounded to one
// decimal place. A course with no marks yet reports zero.
func AttendancePercentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}

// Summary aggregates the acting student's attendance per enrolled course.
// Courses without any marks still appear, at zero percent.
func (s *AttendanceService) Summary(ctx context.Context, actor policy.Actor) ([]dto.CourseAttendanceSummary, error) {
	totals, err := s.attendanceRepo.TotalsByStudent(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CourseAttendanceSummary, 0, len(totals))
	for _, t := range totals {
		summaries = append(summaries, dto.CourseAttendanceSummary{
			CourseID:   t.CourseID,
			CourseName: t.CourseName,
			CourseCode: t.CourseCode,
			Total:      t.Total,
			Present:    t.Present,
			Percentage: AttendancePercentage(t.Present, t.Total),
		})
	}
	return summaries, nil
}
