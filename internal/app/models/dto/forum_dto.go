package dto

// CreateForumPostRequest represents a new forum post
type CreateForumPostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Category string  `json:"category" binding:"omitempty,oneof=academics campus_life events tech_support general"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CreateForumCommentRequest represents a comment, optionally threaded
type CreateForumCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// VoteRequest represents an up/down vote on a post
type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
