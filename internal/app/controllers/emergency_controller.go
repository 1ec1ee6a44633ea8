package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// EmergencyController handles SOS incident reports
type EmergencyController struct {
	emergencyService *services.EmergencyService
}

// NewEmergencyController creates a new EmergencyController
func NewEmergencyController(emergencyService *services.EmergencyService) *EmergencyController {
	return &EmergencyController{emergencyService: emergencyService}
}

// Report files an SOS incident
// @Summary Report SOS incident
// @Tags emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIncidentRequest true "Incident with optional coordinates"
// @Success 201 {object} dto.APIResponse{data=models.Incident}
// @Router /emergency/incidents [post]
func (c *EmergencyController) Report(ctx *gin.Context) {
	var req dto.CreateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	incident, err := c.emergencyService.Report(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(incident))
}

// List returns all incidents, newest first
// @Summary List incidents
// @Tags emergency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Incident}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /emergency/incidents [get]
func (c *EmergencyController) List(ctx *gin.Context) {
	incidents, err := c.emergencyService.List(ctx, actorFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(incidents))
}

// Update moves an incident through its lifecycle
// @Summary Update incident
// @Tags emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param request body dto.UpdateIncidentRequest true "New status and optional notes"
// @Success 200 {object} dto.APIResponse{data=models.Incident}
// @Failure 400 {object} dto.ErrorResponse "Invalid lifecycle move"
// @Router /emergency/incidents/{id} [put]
func (c *EmergencyController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	incident, err := c.emergencyService.Update(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(incident))
}
