package models

import "time"

// Announcement defines the campus announcement model
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"` // academic, events, administrative, emergency, general
	Pinned    bool      `json:"pinned" db:"pinned"`
	PostedBy  int64     `json:"postedBy" db:"posted_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	PosterName *string `json:"posterName,omitempty"`
}
