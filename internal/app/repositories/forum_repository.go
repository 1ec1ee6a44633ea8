package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// ForumRepository handles database operations for forum posts and comments
type ForumRepository struct {
	db *pgxpool.Pool
}

// NewForumRepository creates a new forum repository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{
		db: db,
	}
}

// CreatePost inserts a new forum post
func (r *ForumRepository) CreatePost(ctx context.Context, p *models.ForumPost) error {
	query := `
		INSERT INTO forum_posts (title, content, category, image_url, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, upvotes, downvotes, created_at
	`

	err := r.db.QueryRow(ctx, query, p.Title, p.Content, p.Category, p.ImageURL, p.AuthorID).
		Scan(&p.ID, &p.Upvotes, &p.Downvotes, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating forum post: %w", err)
	}

	return nil
}

// GetPostByID retrieves a post with its author name and comment count
func (r *ForumRepository) GetPostByID(ctx context.Context, id int64) (*models.ForumPost, error) {
	query := `
		SELECT p.id, p.title, p.content, p.category, p.image_url, p.author_id,
		       p.upvotes, p.downvotes, p.created_at, u.name,
		       (SELECT COUNT(*) FROM forum_comments c WHERE c.post_id = p.id)
		FROM forum_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var p models.ForumPost
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Category,
		&p.ImageURL,
		&p.AuthorID,
		&p.Upvotes,
		&p.Downvotes,
		&p.CreatedAt,
		&p.AuthorName,
		&p.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("forum post not found")
		}
		return nil, fmt.Errorf("error retrieving forum post: %w", err)
	}

	return &p, nil
}

// ListPosts retrieves posts newest first, optionally filtered by category
func (r *ForumRepository) ListPosts(ctx context.Context, category *string) ([]*models.ForumPost, error) {
	query := `
		SELECT p.id, p.title, p.content, p.category, p.image_url, p.author_id,
		       p.upvotes, p.downvotes, p.created_at, u.name,
		       (SELECT COUNT(*) FROM forum_comments c WHERE c.post_id = p.id)
		FROM forum_posts p
		JOIN users u ON u.id = p.author_id
		WHERE 1=1
	`
	args := []interface{}{}

	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing forum posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.ForumPost
	for rows.Next() {
		var p models.ForumPost
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Content,
			&p.Category,
			&p.ImageURL,
			&p.AuthorID,
			&p.Upvotes,
			&p.Downvotes,
			&p.CreatedAt,
			&p.AuthorName,
			&p.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning forum post: %w", err)
		}
		posts = append(posts, &p)
	}

	return posts, rows.Err()
}

// CreateComment inserts a comment, optionally under a parent comment
func (r *ForumRepository) CreateComment(ctx context.Context, c *models.ForumComment) error {
	query := `
		INSERT INTO forum_comments (post_id, parent_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, upvotes, downvotes, created_at
	`

	err := r.db.QueryRow(ctx, query, c.PostID, c.ParentID, c.AuthorID, c.Content).
		Scan(&c.ID, &c.Upvotes, &c.Downvotes, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating forum comment: %w", err)
	}

	return nil
}

// ListComments retrieves a post's comments in chronological order
func (r *ForumRepository) ListComments(ctx context.Context, postID int64) ([]*models.ForumComment, error) {
	query := `
		SELECT c.id, c.post_id, c.parent_id, c.author_id, c.content,
		       c.upvotes, c.downvotes, c.created_at, u.name
		FROM forum_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing forum comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.ForumComment
	for rows.Next() {
		var c models.ForumComment
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.ParentID,
			&c.AuthorID,
			&c.Content,
			&c.Upvotes,
			&c.Downvotes,
			&c.CreatedAt,
			&c.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("error scanning forum comment: %w", err)
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}

// VotePost bumps a post's vote counter. Votes are unbounded and not deduplicated.
func (r *ForumRepository) VotePost(ctx context.Context, postID int64, up bool) (*models.ForumPost, error) {
	column := "downvotes"
	if up {
		column = "upvotes"
	}

	query := fmt.Sprintf(`UPDATE forum_posts SET %s = %s + 1 WHERE id = $1`, column, column)
	tag, err := r.db.Exec(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error voting on forum post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError("forum post not found")
	}

	return r.GetPostByID(ctx, postID)
}

// DeletePost removes a post; its comments go with it via FK cascade
func (r *ForumRepository) DeletePost(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM forum_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting forum post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("forum post not found")
	}
	return nil
}
