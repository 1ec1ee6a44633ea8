package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/services"
	"github.com/aegisone/campus/internal/middleware"
)

// AttendanceController handles self-reported attendance
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Mark records one attendance mark; marking the same day again overwrites it
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Mark"
// @Success 200 {object} dto.APIResponse{data=models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Not enrolled or invalid date"
// @Router /attendance [post]
func (c *AttendanceController) Mark(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	mark, err := c.attendanceService.Mark(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mark))
}

// List returns the caller's marks, optionally for one course
// @Summary List attendance marks
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Filter by course"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Router /attendance [get]
func (c *AttendanceController) List(ctx *gin.Context) {
	var courseID *int64
	if v := ctx.Query("courseId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid courseId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		courseID = &id
	}

	marks, err := c.attendanceService.List(ctx, actorFrom(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(marks))
}

// Summary returns per-course attendance percentages
// @Summary Attendance summary
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseAttendanceSummary}
// @Router /attendance/summary [get]
func (c *AttendanceController) Summary(ctx *gin.Context) {
	summary, err := c.attendanceService.Summary(ctx, actorFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}
