package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// clubStore is the slice of the club repository the service needs.
type clubStore interface {
	Create(ctx context.Context, c *models.Club) error
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	List(ctx context.Context) ([]*models.Club, error)
	Delete(ctx context.Context, id int64) error
	IsMember(ctx context.Context, clubID, userID int64) (bool, error)
	AddMember(ctx context.Context, m *models.ClubMember) error
	CreateEvent(ctx context.Context, e *models.ClubEvent) error
	ListEvents(ctx context.Context, clubID int64) ([]*models.ClubEvent, error)
	CreateAnnouncement(ctx context.Context, a *models.ClubAnnouncement) error
	ListAnnouncements(ctx context.Context, clubID int64) ([]*models.ClubAnnouncement, error)
}

type userGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ClubService handles campus clubs, membership, events and club announcements
type ClubService struct {
	clubRepo clubStore
	userRepo userGetter
}

// NewClubService creates a new club service instance
func NewClubService(clubRepo *repositories.ClubRepository, userRepo *repositories.UserRepository) *ClubService {
	return &ClubService{
		clubRepo: clubRepo,
		userRepo: userRepo,
	}
}

// Create registers a club with a designated lead. Admin only.
func (s *ClubService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateClubRequest) (*models.Club, error) {
	if !policy.Can(actor, policy.ActionClubCreate) {
		return nil, apperrors.ErrPermissionDenied
	}
	if _, err := s.userRepo.GetByID(ctx, req.LeadID); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "social"
	}

	club := &models.Club{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		LogoURL:     req.LogoURL,
		LeadID:      req.LeadID,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// List returns all clubs with member counts
func (s *ClubService) List(ctx context.Context) ([]*models.Club, error) {
	return s.clubRepo.List(ctx)
}

// Get returns a club with its events and announcements
func (s *ClubService) Get(ctx context.Context, id int64) (*dto.ClubDetailResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.clubRepo.ListEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	announcements, err := s.clubRepo.ListAnnouncements(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ClubDetailResponse{
		Club:          club,
		Events:        events,
		Announcements: announcements,
	}, nil
}

// Join adds the acting user as a member. Joining a club you already belong
// to is a no-op, not an error.
func (s *ClubService) Join(ctx context.Context, actor policy.Actor, clubID int64) (*models.ClubMember, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	member, err := s.clubRepo.IsMember(ctx, clubID, actor.ID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, nil
	}

	m := &models.ClubMember{
		ClubID: clubID,
		UserID: actor.ID,
		Role:   "member",
	}
	if err := s.clubRepo.AddMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateEvent adds a club event. The club lead or an admin may post.
func (s *ClubService) CreateEvent(ctx context.Context, actor policy.Actor, clubID int64, req *dto.CreateClubEventRequest) (*models.ClubEvent, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != club.LeadID {
		return nil, apperrors.ErrPermissionDenied
	}

	e := &models.ClubEvent{
		ClubID:      clubID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
	}
	if err := s.clubRepo.CreateEvent(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateAnnouncement adds a club announcement. The club lead or an admin
// may post.
func (s *ClubService) CreateAnnouncement(ctx context.Context, actor policy.Actor, clubID int64, req *dto.CreateClubAnnouncementRequest) (*models.ClubAnnouncement, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != club.LeadID {
		return nil, apperrors.ErrPermissionDenied
	}

	a := &models.ClubAnnouncement{
		ClubID:  clubID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.clubRepo.CreateAnnouncement(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes a club and everything under it. Admin only.
func (s *ClubService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if !policy.Can(actor, policy.ActionClubDelete) {
		return apperrors.ErrPermissionDenied
	}
	if _, err := s.clubRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.clubRepo.Delete(ctx, id)
}
