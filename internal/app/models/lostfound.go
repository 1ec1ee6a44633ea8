package models

import "time"

// ItemStatus defines the lost-and-found item lifecycle states
type ItemStatus string

const (
	ItemOpen    ItemStatus = "open"
	ItemClaimed ItemStatus = "claimed"
	ItemClosed  ItemStatus = "closed"
)

// LostFoundItem defines the lost-and-found item model
type LostFoundItem struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url"`
	Location    *string    `json:"location,omitempty" db:"location"`
	Category    string     `json:"category" db:"category"` // electronics, books, id_cards, clothing, other
	ItemType    string     `json:"itemType" db:"item_type"` // lost, found
	Status      ItemStatus `json:"status" db:"status"`
	PostedBy    int64      `json:"postedBy" db:"posted_by"`
	ClaimedBy   *int64     `json:"claimedBy,omitempty" db:"claimed_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	PosterName *string `json:"posterName,omitempty"`
}
