package dto

import (
	"time"

	"github.com/aegisone/campus/internal/app/models"
)

// CreateInternshipRequest represents a new internship posting
type CreateInternshipRequest struct {
	Title          string     `json:"title" binding:"required"`
	Company        string     `json:"company" binding:"required"`
	Description    *string    `json:"description,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Stipend        *int       `json:"stipend,omitempty"`
	RoleType       string     `json:"roleType" binding:"omitempty,oneof=internship research fulltime"`
	RequiredSkills *string    `json:"requiredSkills,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// ApplyRequest represents a student's application to an internship
type ApplyRequest struct {
	ResumeURL *string `json:"resumeUrl,omitempty"`
}

// ReviewApplicationRequest represents a status change on an application
type ReviewApplicationRequest struct {
	Status          models.ApplicationStatus `json:"status" binding:"required"`
	FacultyFeedback *string                  `json:"facultyFeedback,omitempty"`
}
