package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// ClubController handles campus clubs
type ClubController struct {
	clubService *services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService *services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// Create registers a club
// @Summary Create club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClubRequest true "Club with designated lead"
// @Success 201 {object} dto.APIResponse{data=models.Club}
// @Failure 400 {object} dto.ErrorResponse "Club name already exists"
// @Router /clubs [post]
func (c *ClubController) Create(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	club, err := c.clubService.Create(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(club))
}

// List returns all clubs with member counts
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Club}
// @Router /clubs [get]
func (c *ClubController) List(ctx *gin.Context) {
	clubs, err := c.clubService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(clubs))
}

// Get returns a club with its events and announcements
// @Summary Get club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /clubs/{id} [get]
func (c *ClubController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.clubService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// Join adds the caller as a member; joining twice is a no-op
// @Summary Join club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /clubs/{id}/join [post]
func (c *ClubController) Join(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	member, err := c.clubService.Join(ctx, actorFrom(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if member == nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Already a member"}))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member))
}

// CreateEvent adds a club event
// @Summary Create club event
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body dto.CreateClubEventRequest true "Event"
// @Success 201 {object} dto.APIResponse{data=models.ClubEvent}
// @Failure 403 {object} dto.ErrorResponse "Only the club lead or an admin may post"
// @Router /clubs/{id}/events [post]
func (c *ClubController) CreateEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateClubEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	e, err := c.clubService.CreateEvent(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(e))
}

// CreateAnnouncement adds a club announcement
// @Summary Create club announcement
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body dto.CreateClubAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.ClubAnnouncement}
// @Failure 403 {object} dto.ErrorResponse "Only the club lead or an admin may post"
// @Router /clubs/{id}/announcements [post]
func (c *ClubController) CreateAnnouncement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateClubAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	a, err := c.clubService.CreateAnnouncement(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(a))
}

// Delete removes a club
// @Summary Delete club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /clubs/{id} [delete]
func (c *ClubController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.clubService.Delete(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Club deleted"}))
}
