package services

import (
	"context"
	"fmt"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/logger"
)

// GrievanceService handles grievance submission, triage and the comment timeline
type GrievanceService struct {
	grievanceRepo *repositories.GrievanceRepository
	userRepo      *repositories.UserRepository
}

// NewGrievanceService creates a new grievance service instance
func NewGrievanceService(grievanceRepo *repositories.GrievanceRepository, userRepo *repositories.UserRepository) *GrievanceService {
	return &GrievanceService{
		grievanceRepo: grievanceRepo,
		userRepo:      userRepo,
	}
}

// anonymize hides the submitter's identity on anonymous grievances. The row
// keeps the real submitter; only the response is scrubbed.
func anonymize(g *models.Grievance) *models.Grievance {
	if g != nil && g.IsAnonymous {
		anon := "Anonymous"
		g.SubmitterName = &anon
	}
	return g
}

// Create submits a new grievance in pending status
func (s *GrievanceService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateGrievanceRequest) (*models.Grievance, error) {
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	g := &models.Grievance{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      models.GrievancePending,
		Location:    req.Location,
		IsAnonymous: req.IsAnonymous,
		SubmittedBy: actor.ID,
	}
	if err := s.grievanceRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	logger.Info().Int64("grievance_id", g.ID).Str("category", g.Category).Msg("Grievance submitted")
	return anonymize(g), nil
}

// List returns grievances visible to the actor: students see their own,
// authorities see assigned or unassigned, admins see everything.
func (s *GrievanceService) List(ctx context.Context, actor policy.Actor, filter repositories.GrievanceFilter) ([]*models.Grievance, error) {
	grievances, err := s.grievanceRepo.List(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	for _, g := range grievances {
		anonymize(g)
	}
	return grievances, nil
}

// Get returns a single grievance the actor may view
func (s *GrievanceService) Get(ctx context.Context, actor policy.Actor, id int64) (*models.Grievance, error) {
	g, err := s.grievanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewGrievance(actor, g.SubmittedBy) {
		return nil, apperrors.ErrPermissionDenied
	}
	return anonymize(g), nil
}

// Update changes status, assignment or priority. Status moves must follow
// the grievance lifecycle; assignees must be authority or admin accounts.
func (s *GrievanceService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateGrievanceRequest) (*models.Grievance, error) {
	if !policy.Can(actor, policy.ActionGrievanceUpdate) {
		return nil, apperrors.ErrPermissionDenied
	}

	g, err := s.grievanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := policy.GrievanceMachine.CanTransition(string(g.Status), string(*req.Status)); err != nil {
			return nil, err
		}
		g.Status = *req.Status
	}
	if req.AssignedTo != nil {
		assignee, err := s.userRepo.GetByID(ctx, *req.AssignedTo)
		if err != nil {
			return nil, apperrors.ErrAssigneeNotFound
		}
		if assignee.Role != models.RoleAuthority && assignee.Role != models.RoleAdmin {
			return nil, apperrors.ErrInvalidAssignee
		}
		g.AssignedTo = req.AssignedTo
	}
	if req.Priority != nil {
		g.Priority = *req.Priority
	}

	if err := s.grievanceRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	updated, err := s.grievanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return anonymize(updated), nil
}

// Delete removes a grievance and its comment timeline
func (s *GrievanceService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if !policy.Can(actor, policy.ActionGrievanceDelete) {
		return apperrors.ErrPermissionDenied
	}
	if _, err := s.grievanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.grievanceRepo.Delete(ctx, id)
}

// AddComment appends a timeline comment to a grievance the actor may view
func (s *GrievanceService) AddComment(ctx context.Context, actor policy.Actor, grievanceID int64, req *dto.GrievanceCommentRequest) (*models.GrievanceComment, error) {
	g, err := s.grievanceRepo.GetByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewGrievance(actor, g.SubmittedBy) {
		return nil, apperrors.ErrPermissionDenied
	}

	comment := &models.GrievanceComment{
		GrievanceID: grievanceID,
		UserID:      actor.ID,
		Content:     req.Content,
	}
	if err := s.grievanceRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a grievance's timeline in chronological order
func (s *GrievanceService) ListComments(ctx context.Context, actor policy.Actor, grievanceID int64) ([]*models.GrievanceComment, error) {
	g, err := s.grievanceRepo.GetByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewGrievance(actor, g.SubmittedBy) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.grievanceRepo.ListComments(ctx, grievanceID)
}
