package models

import "time"

// Club defines a campus club led by a designated user
type Club struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"` // technical, cultural, sports, social
	LogoURL     *string   `json:"logoUrl,omitempty" db:"logo_url"`
	LeadID      int64     `json:"leadId" db:"lead_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	LeadName    *string `json:"leadName,omitempty"`
	MemberCount int     `json:"memberCount"`
}

// ClubMember links a user to a club; joining twice is a no-op
type ClubMember struct {
	ID       int64     `json:"id" db:"id"`
	ClubID   int64     `json:"clubId" db:"club_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	Role     string    `json:"role" db:"role"` // member, coordinator, core
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

// ClubEvent defines an event hosted by a club
type ClubEvent struct {
	ID          int64     `json:"id" db:"id"`
	ClubID      int64     `json:"clubId" db:"club_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	EventDate   time.Time `json:"eventDate" db:"event_date"`
	Location    *string   `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ClubAnnouncement defines a club-scoped announcement
type ClubAnnouncement struct {
	ID        int64     `json:"id" db:"id"`
	ClubID    int64     `json:"clubId" db:"club_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
