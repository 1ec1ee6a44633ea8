package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// ForumController handles forum posts, comments and votes
type ForumController struct {
	forumService *services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService *services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// CreatePost publishes a forum post
// @Summary Create post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateForumPostRequest true "Post"
// @Success 201 {object} dto.APIResponse{data=models.ForumPost}
// @Router /forum/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	var req dto.CreateForumPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	post, err := c.forumService.CreatePost(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// ListPosts returns posts newest first
// @Summary List posts
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=[]models.ForumPost}
// @Router /forum/posts [get]
func (c *ForumController) ListPosts(ctx *gin.Context) {
	var category *string
	if v := ctx.Query("category"); v != "" {
		category = &v
	}
	posts, err := c.forumService.ListPosts(ctx, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// GetPost returns one post with its comment thread
// @Summary Get post
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=models.ForumPost}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /forum/posts/{id} [get]
func (c *ForumController) GetPost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	post, err := c.forumService.GetPost(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// AddComment appends a comment, optionally as a reply
// @Summary Comment on a post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.CreateForumCommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=models.ForumComment}
// @Router /forum/posts/{id}/comments [post]
func (c *ForumController) AddComment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateForumCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	comment, err := c.forumService.AddComment(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// Vote bumps a post's up or down counter
// @Summary Vote on a post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.VoteRequest true "Direction"
// @Success 200 {object} dto.APIResponse{data=models.ForumPost}
// @Router /forum/posts/{id}/vote [post]
func (c *ForumController) Vote(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	post, err := c.forumService.Vote(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// DeletePost removes a post
// @Summary Delete post
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /forum/posts/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.forumService.DeletePost(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Post deleted"}))
}
