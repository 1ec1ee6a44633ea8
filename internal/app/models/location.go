package models

// CampusLocation defines a point of interest on the campus map
type CampusLocation struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description *string  `json:"description,omitempty" db:"description"`
	Category    string   `json:"category" db:"category"` // academic, facility, hostel, mess, medical
	Latitude    float64  `json:"latitude" db:"latitude"`
	Longitude   float64  `json:"longitude" db:"longitude"`
	ImageURL    *string  `json:"imageUrl,omitempty" db:"image_url"`
}
