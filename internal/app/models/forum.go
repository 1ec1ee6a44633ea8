package models

import "time"

// ForumPost defines the forum post model
type ForumPost struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"` // academics, campus_life, events, tech_support, general
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Upvotes   int       `json:"upvotes" db:"upvotes"`
	Downvotes int       `json:"downvotes" db:"downvotes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorName   *string         `json:"authorName,omitempty"`
	CommentCount int             `json:"commentCount"`
	Comments     []*ForumComment `json:"comments,omitempty"`
}

// ForumComment defines a comment on a forum post, optionally threaded
type ForumComment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	ParentID  *int64    `json:"parentId,omitempty" db:"parent_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	Upvotes   int       `json:"upvotes" db:"upvotes"`
	Downvotes int       `json:"downvotes" db:"downvotes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorName *string `json:"authorName,omitempty"`
}
