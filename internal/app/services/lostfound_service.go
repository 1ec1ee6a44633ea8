package services

import (
	"context"
	"mime/multipart"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/filestorage"
	"github.com/aegisone/campus/internal/pkg/logger"
)

// LostFoundService handles the lost-and-found board
type LostFoundService struct {
	itemRepo *repositories.LostFoundRepository
	storage  filestorage.FileStorage
}

// NewLostFoundService creates a new lost-and-found service instance
func NewLostFoundService(itemRepo *repositories.LostFoundRepository, storage filestorage.FileStorage) *LostFoundService {
	return &LostFoundService{
		itemRepo: itemRepo,
		storage:  storage,
	}
}

// Create posts a lost or found item, with an optional photo
func (s *LostFoundService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateItemRequest, image *multipart.FileHeader) (*models.LostFoundItem, error) {
	category := req.Category
	if category == "" {
		category = "other"
	}

	item := &models.LostFoundItem{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    category,
		ItemType:    req.ItemType,
		Status:      models.ItemOpen,
		PostedBy:    actor.ID,
	}

	if image != nil {
		imageURL, err := s.storage.SaveFileWithPath(image, "lostfound")
		if err != nil {
			return nil, err
		}
		item.ImageURL = &imageURL
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if item.ImageURL != nil {
			if delErr := s.storage.DeleteFile(*item.ImageURL); delErr != nil {
				logger.Warn().Err(delErr).Str("file", *item.ImageURL).Msg("Failed to clean up orphaned upload")
			}
		}
		return nil, err
	}
	return item, nil
}

// List returns items newest first, optionally filtered
func (s *LostFoundService) List(ctx context.Context, filter repositories.ItemFilter) ([]*models.LostFoundItem, error) {
	return s.itemRepo.List(ctx, filter)
}

// Get returns a single item
func (s *LostFoundService) Get(ctx context.Context, id int64) (*models.LostFoundItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// Claim marks an open item as claimed by the acting user. Claiming an item
// that is already claimed or closed is refused.
func (s *LostFoundService) Claim(ctx context.Context, actor policy.Actor, id int64) (*models.LostFoundItem, error) {
	if !policy.Can(actor, policy.ActionItemClaim) {
		return nil, apperrors.ErrPermissionDenied
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemOpen {
		return nil, apperrors.ErrItemNotOpen
	}

	item.Status = models.ItemClaimed
	item.ClaimedBy = &actor.ID
	if err := s.itemRepo.UpdateStatus(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Close resolves an item. The poster or an admin may close, and the move
// must follow the item lifecycle.
func (s *LostFoundService) Close(ctx context.Context, actor policy.Actor, id int64) (*models.LostFoundItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanOn(actor, policy.ActionItemClose, item.PostedBy) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := policy.ItemMachine.CanTransition(string(item.Status), string(models.ItemClosed)); err != nil {
		return nil, err
	}

	item.Status = models.ItemClosed
	if err := s.itemRepo.UpdateStatus(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item posting. The poster or an admin may delete.
func (s *LostFoundService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanOn(actor, policy.ActionItemDelete, item.PostedBy) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	if item.ImageURL != nil {
		if err := s.storage.DeleteFile(*item.ImageURL); err != nil {
			logger.Warn().Err(err).Str("file", *item.ImageURL).Msg("Failed to delete item image")
		}
	}
	return nil
}
