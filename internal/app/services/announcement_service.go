package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// AnnouncementService handles campus-wide announcements
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// Create publishes an announcement
func (s *AnnouncementService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if !policy.Can(actor, policy.ActionAnnouncementCreate) {
		return nil, apperrors.ErrPermissionDenied
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	a := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Pinned:   req.Pinned,
		PostedBy: actor.ID,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns announcements, pinned first then newest first
func (s *AnnouncementService) List(ctx context.Context, category *string) ([]*models.Announcement, error) {
	return s.announcementRepo.List(ctx, category)
}

// Delete removes an announcement. The poster or an admin may delete.
func (s *AnnouncementService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanOn(actor, policy.ActionAnnouncementDelete, a.PostedBy) {
		return apperrors.ErrPermissionDenied
	}
	return s.announcementRepo.Delete(ctx, id)
}
