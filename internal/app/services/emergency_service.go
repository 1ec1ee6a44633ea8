package services

import (
	"context"
	"time"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/logger"
)

// EmergencyService handles SOS incident reports. Anyone may report; only
// admins and authorities may see or resolve reports.
type EmergencyService struct {
	incidentRepo *repositories.IncidentRepository
}

// NewEmergencyService creates a new emergency service instance
func NewEmergencyService(incidentRepo *repositories.IncidentRepository) *EmergencyService {
	return &EmergencyService{incidentRepo: incidentRepo}
}

// Report files an SOS incident in active status
func (s *EmergencyService) Report(ctx context.Context, actor policy.Actor, req *dto.CreateIncidentRequest) (*models.Incident, error) {
	i := &models.Incident{
		UserID:      actor.ID,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.IncidentActive,
	}
	if err := s.incidentRepo.Create(ctx, i); err != nil {
		return nil, err
	}

	logger.Warn().Int64("incident_id", i.ID).Int64("user_id", actor.ID).Msg("SOS incident reported")
	return i, nil
}

// List returns all incidents, newest first. Admin and authority only.
func (s *EmergencyService) List(ctx context.Context, actor policy.Actor) ([]*models.Incident, error) {
	if !policy.Can(actor, policy.ActionIncidentList) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.incidentRepo.List(ctx)
}

// Update moves an incident through its lifecycle. Reaching a terminal state
// stamps the resolution time.
func (s *EmergencyService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateIncidentRequest) (*models.Incident, error) {
	if !policy.Can(actor, policy.ActionIncidentUpdate) {
		return nil, apperrors.ErrPermissionDenied
	}

	i, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.IncidentMachine.CanTransition(string(i.Status), string(req.Status)); err != nil {
		return nil, err
	}

	i.Status = req.Status
	if req.ResolutionNotes != nil {
		i.ResolutionNotes = req.ResolutionNotes
	}
	if req.Status == models.IncidentResolved || req.Status == models.IncidentFalseAlarm {
		now := time.Now()
		i.ResolvedAt = &now
	}

	if err := s.incidentRepo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}
