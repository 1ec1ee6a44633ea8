package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// CourseService handles the course catalog and student enrollment
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// Create adds a course owned by the creating faculty member
func (s *CourseService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !policy.Can(actor, policy.ActionCourseCreate) {
		return nil, apperrors.ErrPermissionDenied
	}

	courseType := req.CourseType
	if courseType == "" {
		courseType = "elective"
	}

	course := &models.Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Semester:    req.Semester,
		Credits:     req.Credits,
		CourseType:  courseType,
		FacultyID:   actor.ID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// List returns the catalog with enrollment counts and the viewer's own
// enrollment flagged per course
func (s *CourseService) List(ctx context.Context, actor policy.Actor) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, actor.ID)
}

// Get returns a single course
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Enroll adds the acting student to a course. Enrolling twice is a conflict.
func (s *CourseService) Enroll(ctx context.Context, actor policy.Actor, courseID int64) (*models.Enrollment, error) {
	if !policy.Can(actor, policy.ActionEnroll) {
		return nil, apperrors.ErrPermissionDenied
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: actor.ID,
		CourseID:  courseID,
	}
	if err := s.courseRepo.Enroll(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// MyEnrollments returns the acting student's enrollments with course details
func (s *CourseService) MyEnrollments(ctx context.Context, actor policy.Actor) ([]*models.Enrollment, error) {
	return s.courseRepo.ListEnrollments(ctx, actor.ID)
}
