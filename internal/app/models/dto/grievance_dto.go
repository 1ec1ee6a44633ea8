package dto

import "github.com/aegisone/campus/internal/app/models"

// CreateGrievanceRequest represents a new grievance submission
type CreateGrievanceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=academic infrastructure hostel food administrative financial other"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Location    *string `json:"location,omitempty"`
	IsAnonymous bool    `json:"isAnonymous"`
}

// UpdateGrievanceRequest represents a status/assignment update by authority or admin
type UpdateGrievanceRequest struct {
	Status     *models.GrievanceStatus `json:"status,omitempty"`
	AssignedTo *int64                  `json:"assignedTo,omitempty"`
	Priority   *string                 `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
}

// GrievanceCommentRequest represents a timeline comment
type GrievanceCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
