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

// ResourceService handles the study resource library and its file uploads
type ResourceService struct {
	resourceRepo *repositories.ResourceRepository
	storage      filestorage.FileStorage
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo *repositories.ResourceRepository, storage filestorage.FileStorage) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		storage:      storage,
	}
}

// Create stores the uploaded file and records the resource
func (s *ResourceService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("a file is required")
	}

	fileURL, err := s.storage.SaveFileWithPath(file, "resources")
	if err != nil {
		return nil, err
	}

	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = "other"
	}

	res := &models.Resource{
		Title:        req.Title,
		Description:  req.Description,
		FileURL:      fileURL,
		CourseCode:   req.CourseCode,
		Year:         req.Year,
		ExamType:     req.ExamType,
		ResourceType: resourceType,
		Tags:         req.Tags,
		UploadedBy:   actor.ID,
	}
	if err := s.resourceRepo.Create(ctx, res); err != nil {
		// The row failed, so the stored file is orphaned. Best effort cleanup.
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			logger.Warn().Err(delErr).Str("file", fileURL).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}
	return res, nil
}

// List returns resources filtered by course code, resource type and exam type
func (s *ResourceService) List(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error) {
	return s.resourceRepo.List(ctx, filter)
}

// Get returns a single resource
func (s *ResourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

// Delete removes a resource and its file. The uploader, admins and
// authorities may delete.
func (s *ResourceService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanOn(actor, policy.ActionResourceDelete, res.UploadedBy) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(res.FileURL); err != nil {
		logger.Warn().Err(err).Str("file", res.FileURL).Msg("Failed to delete resource file")
	}
	return nil
}
