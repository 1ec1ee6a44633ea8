package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// EventService handles the shared academic calendar
type EventService struct {
	eventRepo  *repositories.EventRepository
	courseRepo *repositories.CourseRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository, courseRepo *repositories.CourseRepository) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		courseRepo: courseRepo,
	}
}

// Create adds a calendar entry, optionally tied to a course
func (s *EventService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateEventRequest) (*models.AcademicEvent, error) {
	if !policy.Can(actor, policy.ActionEventCreate) {
		return nil, apperrors.ErrPermissionDenied
	}
	if req.CourseID != nil {
		if _, err := s.courseRepo.GetByID(ctx, *req.CourseID); err != nil {
			return nil, err
		}
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "event"
	}

	e := &models.AcademicEvent{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventType:   eventType,
		CourseID:    req.CourseID,
		CreatedBy:   actor.ID,
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns calendar entries in date order, optionally filtered by type
// and course
func (s *EventService) List(ctx context.Context, filter repositories.EventFilter) ([]*models.AcademicEvent, error) {
	return s.eventRepo.List(ctx, filter)
}

// Delete removes a calendar entry. The creator or an admin may delete.
func (s *EventService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanOn(actor, policy.ActionEventDelete, e.CreatedBy) {
		return apperrors.ErrPermissionDenied
	}
	return s.eventRepo.Delete(ctx, id)
}
