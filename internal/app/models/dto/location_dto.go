package dto

// CreateLocationRequest represents a new campus map point of interest
type CreateLocationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" binding:"omitempty,oneof=academic facility hostel mess medical"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
