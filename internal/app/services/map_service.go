package services

import (
	"context"
	"strings"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// MapService handles campus map points of interest
type MapService struct {
	locationRepo *repositories.LocationRepository
}

// NewMapService creates a new map service instance
func NewMapService(locationRepo *repositories.LocationRepository) *MapService {
	return &MapService{locationRepo: locationRepo}
}

// Create adds a point of interest. Admin only.
func (s *MapService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateLocationRequest) (*models.CampusLocation, error) {
	if !policy.Can(actor, policy.ActionLocationCreate) {
		return nil, apperrors.ErrPermissionDenied
	}

	category := req.Category
	if category == "" {
		category = "facility"
	}

	l := &models.CampusLocation{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	}
	if err := s.locationRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns all points of interest, or a case-insensitive name match
// when a query is given
func (s *MapService) List(ctx context.Context, query string) ([]*models.CampusLocation, error) {
	query = strings.TrimSpace(query)
	if query != "" {
		return s.locationRepo.Search(ctx, query)
	}
	return s.locationRepo.List(ctx)
}

// Delete removes a point of interest. Admin only.
func (s *MapService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if !policy.Can(actor, policy.ActionLocationDelete) {
		return apperrors.ErrPermissionDenied
	}
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.locationRepo.Delete(ctx, id)
}
