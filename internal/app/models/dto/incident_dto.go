package dto

import "github.com/aegisone/campus/internal/app/models"

// CreateIncidentRequest represents an SOS report
type CreateIncidentRequest struct {
	Description string   `json:"description" binding:"required"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// UpdateIncidentRequest represents a status change by admin or authority
type UpdateIncidentRequest struct {
	Status          models.IncidentStatus `json:"status" binding:"required"`
	ResolutionNotes *string               `json:"resolutionNotes,omitempty"`
}
