package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// Defaults for new caravan pools
const (
	defaultCaravanOrigin = "IIT Mandi Campus"
	defaultCaravanSeats  = 3
)

// CommonsService handles the student commons: ride-share caravan pools and
// freelance mercenary gigs
type CommonsService struct {
	commonsRepo *repositories.CommonsRepository
	userRepo    *repositories.UserRepository
}

// NewCommonsService creates a new commons service instance
func NewCommonsService(commonsRepo *repositories.CommonsRepository, userRepo *repositories.UserRepository) *CommonsService {
	return &CommonsService{
		commonsRepo: commonsRepo,
		userRepo:    userRepo,
	}
}

// CreateCaravan posts a ride-share pool with origin and seat defaults
func (s *CommonsService) CreateCaravan(ctx context.Context, actor policy.Actor, req *dto.CreateCaravanRequest) (*models.CaravanPool, error) {
	origin := req.Origin
	if origin == "" {
		origin = defaultCaravanOrigin
	}
	seats := req.AvailableSeats
	if seats == 0 {
		seats = defaultCaravanSeats
	}

	c := &models.CaravanPool{
		Destination:    req.Destination,
		Origin:         origin,
		TravelDate:     req.TravelDate,
		AvailableSeats: seats,
		EstimatedCost:  req.EstimatedCost,
		ContactInfo:    req.ContactInfo,
		Description:    req.Description,
		Status:         models.CaravanOpen,
		PostedBy:       actor.ID,
	}
	if err := s.commonsRepo.CreateCaravan(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCaravans returns pools ordered by travel date
func (s *CommonsService) ListCaravans(ctx context.Context) ([]*models.CaravanPool, error) {
	return s.commonsRepo.ListCaravans(ctx)
}

// UpdateCaravan moves a pool through its lifecycle. The poster or an admin
// may update.
func (s *CommonsService) UpdateCaravan(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateCaravanRequest) (*models.CaravanPool, error) {
	c, err := s.commonsRepo.GetCaravanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanOn(actor, policy.ActionCaravanUpdate, c.PostedBy) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := policy.CaravanMachine.CanTransition(string(c.Status), string(req.Status)); err != nil {
		return nil, err
	}

	if err := s.commonsRepo.UpdateCaravanStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	c.Status = req.Status
	return c, nil
}

// CreateGig posts a freelance gig
func (s *CommonsService) CreateGig(ctx context.Context, actor policy.Actor, req *dto.CreateGigRequest) (*models.MercenaryGig, error) {
	category := req.Category
	if category == "" {
		category = "other"
	}

	g := &models.MercenaryGig{
		Title:          req.Title,
		Description:    req.Description,
		Category:       category,
		Budget:         req.Budget,
		RequiredSkills: req.RequiredSkills,
		Status:         models.GigOpen,
		PostedBy:       actor.ID,
	}
	if err := s.commonsRepo.CreateGig(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGigs returns gigs newest first
func (s *CommonsService) ListGigs(ctx context.Context) ([]*models.MercenaryGig, error) {
	return s.commonsRepo.ListGigs(ctx)
}

// UpdateGig moves a gig through its lifecycle, optionally assigning a worker
// and, on completion, leaving a rating and review. The poster or an admin
// may update.
func (s *CommonsService) UpdateGig(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateGigRequest) (*models.MercenaryGig, error) {
	g, err := s.commonsRepo.GetGigByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanOn(actor, policy.ActionGigUpdate, g.PostedBy) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := policy.GigMachine.CanTransition(string(g.Status), string(req.Status)); err != nil {
		return nil, err
	}

	g.Status = req.Status
	if req.AssignedTo != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
		g.AssignedTo = req.AssignedTo
	}
	if req.Rating != nil {
		g.Rating = req.Rating
	}
	if req.ReviewContent != nil {
		g.ReviewContent = req.ReviewContent
	}

	if err := s.commonsRepo.UpdateGig(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
