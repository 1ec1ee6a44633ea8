package dto

// CreateAnnouncementRequest represents a new campus announcement
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"omitempty,oneof=academic events administrative emergency general"`
	Pinned   bool   `json:"pinned"`
}
