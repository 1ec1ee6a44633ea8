package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// CommonsController handles caravan ride-share pools and mercenary gigs
type CommonsController struct {
	commonsService *services.CommonsService
}

// NewCommonsController creates a new CommonsController
func NewCommonsController(commonsService *services.CommonsService) *CommonsController {
	return &CommonsController{commonsService: commonsService}
}

// CreateCaravan posts a ride-share pool
// @Summary Create caravan pool
// @Tags commons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCaravanRequest true "Pool details"
// @Success 201 {object} dto.APIResponse{data=models.CaravanPool}
// @Router /commons/caravans [post]
func (c *CommonsController) CreateCaravan(ctx *gin.Context) {
	var req dto.CreateCaravanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	pool, err := c.commonsService.CreateCaravan(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(pool))
}

// ListCaravans returns pools ordered by travel date
// @Summary List caravan pools
// @Tags commons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CaravanPool}
// @Router /commons/caravans [get]
func (c *CommonsController) ListCaravans(ctx *gin.Context) {
	pools, err := c.commonsService.ListCaravans(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pools))
}

// UpdateCaravan moves a pool through its lifecycle
// @Summary Update caravan pool
// @Tags commons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pool ID"
// @Param request body dto.UpdateCaravanRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.CaravanPool}
// @Failure 400 {object} dto.ErrorResponse "Invalid lifecycle move"
// @Router /commons/caravans/{id} [put]
func (c *CommonsController) UpdateCaravan(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCaravanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	pool, err := c.commonsService.UpdateCaravan(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pool))
}

// CreateGig posts a freelance gig
// @Summary Create gig
// @Tags commons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGigRequest true "Gig details"
// @Success 201 {object} dto.APIResponse{data=models.MercenaryGig}
// @Router /commons/gigs [post]
func (c *CommonsController) CreateGig(ctx *gin.Context) {
	var req dto.CreateGigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	gig, err := c.commonsService.CreateGig(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gig))
}

// ListGigs returns gigs newest first
// @Summary List gigs
// @Tags commons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MercenaryGig}
// @Router /commons/gigs [get]
func (c *CommonsController) ListGigs(ctx *gin.Context) {
	gigs, err := c.commonsService.ListGigs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gigs))
}

// UpdateGig moves a gig through its lifecycle
// @Summary Update gig
// @Tags commons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gig ID"
// @Param request body dto.UpdateGigRequest true "New status, assignment, rating"
// @Success 200 {object} dto.APIResponse{data=models.MercenaryGig}
// @Failure 400 {object} dto.ErrorResponse "Invalid lifecycle move"
// @Router /commons/gigs/{id} [put]
func (c *CommonsController) UpdateGig(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateGigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	gig, err := c.commonsService.UpdateGig(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gig))
}
