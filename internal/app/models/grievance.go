package models

import "time"

// GrievanceStatus defines the grievance lifecycle states
type GrievanceStatus string

const (
	GrievancePending    GrievanceStatus = "pending"
	GrievanceInReview   GrievanceStatus = "in_review"
	GrievanceInProgress GrievanceStatus = "in_progress"
	GrievanceResolved   GrievanceStatus = "resolved"
	GrievanceRejected   GrievanceStatus = "rejected"
)

// Grievance defines the grievance model based on the 'grievances' table
type Grievance struct {
	ID          int64           `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Category    string          `json:"category" db:"category"` // academic, infrastructure, hostel, food, administrative, financial, other
	Priority    string          `json:"priority" db:"priority"` // low, medium, high, urgent
	Status      GrievanceStatus `json:"status" db:"status"`
	Location    *string         `json:"location,omitempty" db:"location"`
	ImageURL    *string         `json:"imageUrl,omitempty" db:"image_url"`
	IsAnonymous bool            `json:"isAnonymous" db:"is_anonymous"`
	SubmittedBy int64           `json:"submittedBy" db:"submitted_by"`
	AssignedTo  *int64          `json:"assignedTo,omitempty" db:"assigned_to"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`

	// Related entities, resolved at read time
	SubmitterName *string `json:"submitterName,omitempty"`
	AssigneeName  *string `json:"assigneeName,omitempty"`
}

// GrievanceComment is a timeline entry on a grievance
type GrievanceComment struct {
	ID          int64     `json:"id" db:"id"`
	GrievanceID int64     `json:"grievanceId" db:"grievance_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	UserName *string `json:"userName,omitempty"`
	UserRole *string `json:"userRole,omitempty"`
}
