package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// InternshipController handles internship postings and applications
type InternshipController struct {
	internshipService *services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// Create posts an internship
// @Summary Post internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Posting details"
// @Success 201 {object} dto.APIResponse{data=models.Internship}
// @Router /internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	internship, err := c.internshipService.Create(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(internship))
}

// List returns postings with application counts
// @Summary List internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param roleType query string false "Filter by role type"
// @Success 200 {object} dto.APIResponse{data=[]models.Internship}
// @Router /internships [get]
func (c *InternshipController) List(ctx *gin.Context) {
	var roleType *string
	if v := ctx.Query("roleType"); v != "" {
		roleType = &v
	}
	internships, err := c.internshipService.List(ctx, actorFrom(ctx), roleType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// Get returns one posting
// @Summary Get internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /internships/{id} [get]
func (c *InternshipController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	internship, err := c.internshipService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Apply submits the calling student's application
// @Summary Apply to internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.ApplyRequest false "Optional resume link"
// @Success 201 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse "Already applied"
// @Router /internships/{id}/apply [post]
func (c *InternshipController) Apply(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		bindingFailed(ctx, err)
		return
	}
	application, err := c.internshipService.Apply(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// MyApplications returns the calling student's applications
// @Summary My applications
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Router /internships/my-applications [get]
func (c *InternshipController) MyApplications(ctx *gin.Context) {
	applications, err := c.internshipService.MyApplications(ctx, actorFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// ListApplications returns applicants for a posting
// @Summary List applications
// @Description Only the posting faculty member or an admin may see applicants
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /internships/{id}/applications [get]
func (c *InternshipController) ListApplications(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	applications, err := c.internshipService.ListApplications(ctx, actorFrom(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// Review moves an application through the pipeline
// @Summary Review application
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.ReviewApplicationRequest true "New status and optional feedback"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse "Invalid lifecycle move"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /applications/{id} [put]
func (c *InternshipController) Review(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ReviewApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	application, err := c.internshipService.Review(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application))
}
