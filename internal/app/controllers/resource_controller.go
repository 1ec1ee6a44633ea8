package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// ResourceController handles the study resource library
type ResourceController struct {
	resourceService *services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// Create uploads a resource file with its metadata
// @Summary Upload resource
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param file formData file true "The resource file"
// @Success 201 {object} dto.APIResponse{data=models.Resource}
// @Failure 400 {object} dto.ErrorResponse "Missing file or invalid metadata"
// @Router /resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	res, err := c.resourceService.Create(ctx, actorFrom(ctx), &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(res))
}

// List returns resources filtered by course, type and exam
// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param courseCode query string false "Filter by course code"
// @Param resourceType query string false "Filter by resource type"
// @Param examType query string false "Filter by exam type"
// @Success 200 {object} dto.APIResponse{data=[]models.Resource}
// @Router /resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	resources, err := c.resourceService.List(ctx, resourceFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// Get returns a single resource by ID
// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource}
// @Failure 404 {object} dto.ErrorResponse
// @Router /resources/{id} [get]
func (c *ResourceController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	res, err := c.resourceService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// Delete removes a resource and its file
// @Summary Delete resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.resourceService.Delete(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Resource deleted"}))
}

func resourceFilterFromQuery(ctx *gin.Context) repositories.ResourceFilter {
	var filter repositories.ResourceFilter
	if v := ctx.Query("courseCode"); v != "" {
		filter.CourseCode = &v
	}
	if v := ctx.Query("resourceType"); v != "" {
		filter.ResourceType = &v
	}
	if v := ctx.Query("examType"); v != "" {
		filter.ExamType = &v
	}
	return filter
}
