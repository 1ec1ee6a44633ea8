package dto

import (
	"time"

	"github.com/aegisone/campus/internal/app/models"
)

// CreateClubRequest represents a new club, created by admin with a designated lead
type CreateClubRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"omitempty,oneof=technical cultural sports social"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	LeadID      int64   `json:"leadId" binding:"required,min=1"`
}

// CreateClubEventRequest represents a club-hosted event
type CreateClubEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	Location    *string   `json:"location,omitempty"`
}

// CreateClubAnnouncementRequest represents a club-scoped announcement
type CreateClubAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ClubDetailResponse bundles a club with its events and announcements
type ClubDetailResponse struct {
	Club          *models.Club               `json:"club"`
	Events        []*models.ClubEvent        `json:"events"`
	Announcements []*models.ClubAnnouncement `json:"announcements"`
}
