package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// GrievanceController handles grievance submission, triage and comments
type GrievanceController struct {
	grievanceService *services.GrievanceService
}

// NewGrievanceController creates a new GrievanceController
func NewGrievanceController(grievanceService *services.GrievanceService) *GrievanceController {
	return &GrievanceController{grievanceService: grievanceService}
}

// Create submits a new grievance
// @Summary Submit a grievance
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGrievanceRequest true "Grievance details"
// @Success 201 {object} dto.APIResponse{data=models.Grievance}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /grievances [post]
func (c *GrievanceController) Create(ctx *gin.Context) {
	var req dto.CreateGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	g, err := c.grievanceService.Create(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(g))
}

// List returns grievances visible to the caller
// @Summary List grievances
// @Description Students see their own; authorities see assigned or unassigned; admins see all
// @Tags grievances
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param priority query string false "Filter by priority"
// @Success 200 {object} dto.APIResponse{data=[]models.Grievance}
// @Router /grievances [get]
func (c *GrievanceController) List(ctx *gin.Context) {
	grievances, err := c.grievanceService.List(ctx, actorFrom(ctx), grievanceFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grievances))
}

// Get returns one grievance the caller may view
// @Summary Get grievance
// @Tags grievances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grievance ID"
// @Success 200 {object} dto.APIResponse{data=models.Grievance}
// @Failure 403 {object} dto.ErrorResponse "Not visible to this user"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /grievances/{id} [get]
func (c *GrievanceController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	g, err := c.grievanceService.Get(ctx, actorFrom(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(g))
}

// Update changes status, assignment or priority
// @Summary Update grievance
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grievance ID"
// @Param request body dto.UpdateGrievanceRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Grievance}
// @Failure 400 {object} dto.ErrorResponse "Invalid lifecycle move or assignee"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /grievances/{id} [put]
func (c *GrievanceController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	g, err := c.grievanceService.Update(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(g))
}

// Delete removes a grievance
// @Summary Delete grievance
// @Tags grievances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grievance ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /grievances/{id} [delete]
func (c *GrievanceController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.grievanceService.Delete(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Grievance deleted"}))
}

// AddComment appends a timeline comment
// @Summary Comment on a grievance
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grievance ID"
// @Param request body dto.GrievanceCommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=models.GrievanceComment}
// @Router /grievances/{id}/comments [post]
func (c *GrievanceController) AddComment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.GrievanceCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	comment, err := c.grievanceService.AddComment(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// ListComments returns a grievance's timeline
// @Summary List grievance comments
// @Tags grievances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grievance ID"
// @Success 200 {object} dto.APIResponse{data=[]models.GrievanceComment}
// @Router /grievances/{id}/comments [get]
func (c *GrievanceController) ListComments(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	comments, err := c.grievanceService.ListComments(ctx, actorFrom(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comments))
}

func grievanceFilterFromQuery(ctx *gin.Context) repositories.GrievanceFilter {
	var filter repositories.GrievanceFilter
	if v := ctx.Query("status"); v != "" {
		status := models.GrievanceStatus(v)
		filter.Status = &status
	}
	if v := ctx.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := ctx.Query("priority"); v != "" {
		filter.Priority = &v
	}
	return filter
}
