package models

import "time"

// CaravanStatus defines ride-share pool states
type CaravanStatus string

const (
	CaravanOpen      CaravanStatus = "open"
	CaravanFull      CaravanStatus = "full"
	CaravanCompleted CaravanStatus = "completed"
)

// CaravanPool defines a shared ride posting
type CaravanPool struct {
	ID             int64         `json:"id" db:"id"`
	Destination    string        `json:"destination" db:"destination"`
	Origin         string        `json:"origin" db:"origin"`
	TravelDate     time.Time     `json:"travelDate" db:"travel_date"`
	AvailableSeats int           `json:"availableSeats" db:"available_seats"`
	EstimatedCost  *float64      `json:"estimatedCost,omitempty" db:"estimated_cost"`
	ContactInfo    *string       `json:"contactInfo,omitempty" db:"contact_info"`
	Description    *string       `json:"description,omitempty" db:"description"`
	Status         CaravanStatus `json:"status" db:"status"`
	PostedBy       int64         `json:"postedBy" db:"posted_by"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`

	PosterName *string `json:"posterName,omitempty"`
}

// GigStatus defines freelance gig states
type GigStatus string

const (
	GigOpen      GigStatus = "open"
	GigAssigned  GigStatus = "assigned"
	GigCompleted GigStatus = "completed"
)

// MercenaryGig defines a freelance gig posting
type MercenaryGig struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Category       string    `json:"category" db:"category"` // tutoring, design, coding, photography, other
	Budget         *string   `json:"budget,omitempty" db:"budget"`
	RequiredSkills *string   `json:"requiredSkills,omitempty" db:"required_skills"`
	Status         GigStatus `json:"status" db:"status"`
	PostedBy       int64     `json:"postedBy" db:"posted_by"`
	AssignedTo     *int64    `json:"assignedTo,omitempty" db:"assigned_to"`
	Rating         *int      `json:"rating,omitempty" db:"rating"` // 1-5 stars
	ReviewContent  *string   `json:"reviewContent,omitempty" db:"review_content"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	PosterName *string `json:"posterName,omitempty"`
}
