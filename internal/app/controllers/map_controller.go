package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// MapController handles campus map points of interest
type MapController struct {
	mapService *services.MapService
}

// NewMapController creates a new MapController
func NewMapController(mapService *services.MapService) *MapController {
	return &MapController{mapService: mapService}
}

// Create adds a point of interest
// @Summary Create map location
// @Tags map
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLocationRequest true "Location"
// @Success 201 {object} dto.APIResponse{data=models.CampusLocation}
// @Router /map/locations [post]
func (c *MapController) Create(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	l, err := c.mapService.Create(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(l))
}

// List returns all points of interest, or a name search
// @Summary List map locations
// @Tags map
// @Produce json
// @Security BearerAuth
// @Param q query string false "Case-insensitive name search"
// @Success 200 {object} dto.APIResponse{data=[]models.CampusLocation}
// @Router /map/locations [get]
func (c *MapController) List(ctx *gin.Context) {
	locations, err := c.mapService.List(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(locations))
}

// Delete removes a point of interest
// @Summary Delete map location
// @Tags map
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /map/locations/{id} [delete]
func (c *MapController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.mapService.Delete(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Location deleted"}))
}
