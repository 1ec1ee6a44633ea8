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

// LostFoundController handles the lost-and-found board
type LostFoundController struct {
	lostFoundService *services.LostFoundService
}

// NewLostFoundController creates a new LostFoundController
func NewLostFoundController(lostFoundService *services.LostFoundService) *LostFoundController {
	return &LostFoundController{lostFoundService: lostFoundService}
}

// Create posts a lost or found item with an optional photo
// @Summary Post item
// @Tags lostfound
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param itemType formData string true "lost or found"
// @Param image formData file false "Optional photo"
// @Success 201 {object} dto.APIResponse{data=models.LostFoundItem}
// @Router /lostfound [post]
func (c *LostFoundController) Create(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	item, err := c.lostFoundService.Create(ctx, actorFrom(ctx), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// List returns items newest first
// @Summary List items
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param itemType query string false "Filter lost or found"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.LostFoundItem}
// @Router /lostfound [get]
func (c *LostFoundController) List(ctx *gin.Context) {
	items, err := c.lostFoundService.List(ctx, itemFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// Get returns a single item by ID
// @Summary Get item
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=models.LostFoundItem}
// @Failure 404 {object} dto.ErrorResponse
// @Router /lostfound/{id} [get]
func (c *LostFoundController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.lostFoundService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// Claim marks an open item as claimed by the caller
// @Summary Claim item
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=models.LostFoundItem}
// @Failure 400 {object} dto.ErrorResponse "Item already claimed or closed"
// @Router /lostfound/{id}/claim [post]
func (c *LostFoundController) Claim(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.lostFoundService.Claim(ctx, actorFrom(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// Close resolves an item
// @Summary Close item
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=models.LostFoundItem}
// @Router /lostfound/{id}/close [post]
func (c *LostFoundController) Close(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.lostFoundService.Close(ctx, actorFrom(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// Delete removes an item posting
// @Summary Delete item
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /lostfound/{id} [delete]
func (c *LostFoundController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.lostFoundService.Delete(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Item deleted"}))
}

func itemFilterFromQuery(ctx *gin.Context) repositories.ItemFilter {
	var filter repositories.ItemFilter
	if v := ctx.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := ctx.Query("itemType"); v != "" {
		filter.ItemType = &v
	}
	if v := ctx.Query("status"); v != "" {
		status := models.ItemStatus(v)
		filter.Status = &status
	}
	return filter
}
