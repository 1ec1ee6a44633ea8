package dto

import (
	"time"

	"github.com/aegisone/campus/internal/app/models"
)

// CreateCaravanRequest represents a new ride-share pool
type CreateCaravanRequest struct {
	Destination    string    `json:"destination" binding:"required"`
	Origin         string    `json:"origin"`
	TravelDate     time.Time `json:"travelDate" binding:"required"`
	AvailableSeats int       `json:"availableSeats" binding:"omitempty,min=1,max=20"`
	EstimatedCost  *float64  `json:"estimatedCost,omitempty"`
	ContactInfo    *string   `json:"contactInfo,omitempty"`
	Description    *string   `json:"description,omitempty"`
}

// UpdateCaravanRequest represents a pool status change by the poster or admin
type UpdateCaravanRequest struct {
	Status models.CaravanStatus `json:"status" binding:"required"`
}

// CreateGigRequest represents a new freelance gig posting
type CreateGigRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Category       string  `json:"category" binding:"omitempty,oneof=tutoring design coding photography other"`
	Budget         *string `json:"budget,omitempty"`
	RequiredSkills *string `json:"requiredSkills,omitempty"`
}

// UpdateGigRequest represents a gig status change by the poster or admin
type UpdateGigRequest struct {
	Status        models.GigStatus `json:"status" binding:"required"`
	AssignedTo    *int64           `json:"assignedTo,omitempty"`
	Rating        *int             `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	ReviewContent *string          `json:"reviewContent,omitempty"`
}
