package models

import "time"

// ApplicationStatus defines the internship application lifecycle states
type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Internship defines the internship posting model
type Internship struct {
	ID             int64      `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Company        string     `json:"company" db:"company"`
	Description    *string    `json:"description,omitempty" db:"description"`
	Location       *string    `json:"location,omitempty" db:"location"`
	Stipend        *int       `json:"stipend,omitempty" db:"stipend"`
	RoleType       string     `json:"roleType" db:"role_type"` // internship, research, fulltime
	RequiredSkills *string    `json:"requiredSkills,omitempty" db:"required_skills"`
	Duration       *string    `json:"duration,omitempty" db:"duration"`
	Deadline       *time.Time `json:"deadline,omitempty" db:"deadline"`
	PostedBy       int64      `json:"postedBy" db:"posted_by"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`

	PosterName       *string `json:"posterName,omitempty"`
	ApplicationCount int     `json:"applicationCount"`
	HasApplied       bool    `json:"hasApplied"`
}

// Application links a student to an internship, unique per (student, internship)
type Application struct {
	ID              int64             `json:"id" db:"id"`
	StudentID       int64             `json:"studentId" db:"student_id"`
	InternshipID    int64             `json:"internshipId" db:"internship_id"`
	Status          ApplicationStatus `json:"status" db:"status"`
	ResumeURL       *string           `json:"resumeUrl,omitempty" db:"resume_url"`
	FacultyFeedback *string           `json:"facultyFeedback,omitempty" db:"faculty_feedback"`
	AppliedAt       time.Time         `json:"appliedAt" db:"applied_at"`

	StudentName     *string `json:"studentName,omitempty"`
	InternshipTitle *string `json:"internshipTitle,omitempty"`
	Company         *string `json:"company,omitempty"`
}
