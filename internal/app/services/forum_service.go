package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// ForumService handles forum posts, threaded comments and voting
type ForumService struct {
	forumRepo *repositories.ForumRepository
}

// NewForumService creates a new forum service instance
func NewForumService(forumRepo *repositories.ForumRepository) *ForumService {
	return &ForumService{forumRepo: forumRepo}
}

// CreatePost publishes a new forum post
func (s *ForumService) CreatePost(ctx context.Context, actor policy.Actor, req *dto.CreateForumPostRequest) (*models.ForumPost, error) {
	category := req.Category
	if category == "" {
		category = "general"
	}

	post := &models.ForumPost{
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		ImageURL: req.ImageURL,
		AuthorID: actor.ID,
	}
	if err := s.forumRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns posts newest first, optionally filtered by category
func (s *ForumService) ListPosts(ctx context.Context, category *string) ([]*models.ForumPost, error) {
	return s.forumRepo.ListPosts(ctx, category)
}

// GetPost returns one post with its comment thread attached
func (s *ForumService) GetPost(ctx context.Context, id int64) (*models.ForumPost, error) {
	post, err := s.forumRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.forumRepo.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return post, nil
}

// AddComment appends a comment to a post, optionally as a reply
func (s *ForumService) AddComment(ctx context.Context, actor policy.Actor, postID int64, req *dto.CreateForumCommentRequest) (*models.ForumComment, error) {
	if _, err := s.forumRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.ForumComment{
		PostID:   postID,
		ParentID: req.ParentID,
		AuthorID: actor.ID,
		Content:  req.Content,
	}
	if err := s.forumRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Vote bumps a post's up or down counter. Votes are not deduplicated; the
// counters are a rough signal, not a ledger.
func (s *ForumService) Vote(ctx context.Context, postID int64, req *dto.VoteRequest) (*models.ForumPost, error) {
	return s.forumRepo.VotePost(ctx, postID, req.Direction == "up")
}

// DeletePost removes a post. The author, admins and authorities may delete.
func (s *ForumService) DeletePost(ctx context.Context, actor policy.Actor, id int64) error {
	post, err := s.forumRepo.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanOn(actor, policy.ActionForumPostDelete, post.AuthorID) {
		return apperrors.ErrPermissionDenied
	}
	return s.forumRepo.DeletePost(ctx, id)
}
