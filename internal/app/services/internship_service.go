package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// internshipStore is the slice of the internship repository the service needs.
type internshipStore interface {
	Create(ctx context.Context, i *models.Internship) error
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	List(ctx context.Context, viewerID int64, roleType *string) ([]*models.Internship, error)
	Apply(ctx context.Context, a *models.Application) error
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	ListApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	ListApplicationsByInternship(ctx context.Context, internshipID int64) ([]*models.Application, error)
	UpdateApplication(ctx context.Context, a *models.Application) error
}

// InternshipService handles internship postings and the application pipeline
type InternshipService struct {
	internshipRepo internshipStore
}

// NewInternshipService creates a new internship service instance
func NewInternshipService(internshipRepo *repositories.InternshipRepository) *InternshipService {
	return &InternshipService{internshipRepo: internshipRepo}
}

// Create posts a new internship owned by the acting faculty member
func (s *InternshipService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	if !policy.Can(actor, policy.ActionInternshipCreate) {
		return nil, apperrors.ErrPermissionDenied
	}

	roleType := req.RoleType
	if roleType == "" {
		roleType = "internship"
	}

	internship := &models.Internship{
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		Location:       req.Location,
		Stipend:        req.Stipend,
		RoleType:       roleType,
		RequiredSkills: req.RequiredSkills,
		Duration:       req.Duration,
		Deadline:       req.Deadline,
		PostedBy:       actor.ID,
	}
	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// List returns postings with application counts and the viewer's own
// application flagged per posting
func (s *InternshipService) List(ctx context.Context, actor policy.Actor, roleType *string) ([]*models.Internship, error) {
	return s.internshipRepo.List(ctx, actor.ID, roleType)
}

// Get returns a single internship posting
func (s *InternshipService) Get(ctx context.Context, id int64) (*models.Internship, error) {
	return s.internshipRepo.GetByID(ctx, id)
}

// Apply submits the acting student's application. Applying twice is a conflict.
func (s *InternshipService) Apply(ctx context.Context, actor policy.Actor, internshipID int64, req *dto.ApplyRequest) (*models.Application, error) {
	if !policy.Can(actor, policy.ActionApply) {
		return nil, apperrors.ErrPermissionDenied
	}
	if _, err := s.internshipRepo.GetByID(ctx, internshipID); err != nil {
		return nil, err
	}

	application := &models.Application{
		StudentID:    actor.ID,
		InternshipID: internshipID,
		Status:       models.ApplicationSubmitted,
		ResumeURL:    req.ResumeURL,
	}
	if err := s.internshipRepo.Apply(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// MyApplications returns the acting student's applications, newest first
func (s *InternshipService) MyApplications(ctx context.Context, actor policy.Actor) ([]*models.Application, error) {
	return s.internshipRepo.ListApplicationsByStudent(ctx, actor.ID)
}

// ListApplications returns applicants for a posting. Only the posting
// faculty member or an admin may see them.
func (s *InternshipService) ListApplications(ctx context.Context, actor policy.Actor, internshipID int64) ([]*models.Application, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if !policy.CanOn(actor, policy.ActionApplicationReview, internship.PostedBy) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.internshipRepo.ListApplicationsByInternship(ctx, internshipID)
}

// Review moves an application through its lifecycle. Only the posting
// faculty member or an admin may review, and moves must follow the pipeline.
func (s *InternshipService) Review(ctx context.Context, actor policy.Actor, applicationID int64, req *dto.ReviewApplicationRequest) (*models.Application, error) {
	application, err := s.internshipRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	internship, err := s.internshipRepo.GetByID(ctx, application.InternshipID)
	if err != nil {
		return nil, err
	}
	if !policy.CanOn(actor, policy.ActionApplicationReview, internship.PostedBy) {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := policy.ApplicationMachine.CanTransition(string(application.Status), string(req.Status)); err != nil {
		return nil, err
	}
	application.Status = req.Status
	if req.FacultyFeedback != nil {
		application.FacultyFeedback = req.FacultyFeedback
	}

	if err := s.internshipRepo.UpdateApplication(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}
