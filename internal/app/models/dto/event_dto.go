package dto

import "time"

// CreateEventRequest represents a new academic calendar entry
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description,omitempty"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	EventType   string    `json:"eventType" binding:"omitempty,oneof=exam assignment holiday deadline event"`
	CourseID    *int64    `json:"courseId,omitempty"`
}
