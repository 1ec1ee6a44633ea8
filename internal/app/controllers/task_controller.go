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

// TaskController handles personal task lists
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new TaskController
func NewTaskController(taskService *services.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// Create adds a task for the caller
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.APIResponse{data=models.Task}
// @Router /tasks [post]
func (c *TaskController) Create(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	t, err := c.taskService.Create(ctx, actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(t))
}

// List returns the caller's tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Task}
// @Router /tasks [get]
func (c *TaskController) List(ctx *gin.Context) {
	tasks, err := c.taskService.List(ctx, actorFrom(ctx), taskFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tasks))
}

// Update applies a partial update to the caller's own task
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Task}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /tasks/{id} [put]
func (c *TaskController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(ctx, err)
		return
	}
	t, err := c.taskService.Update(ctx, actorFrom(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(t))
}

// Delete removes the caller's own task
// @Summary Delete task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /tasks/{id} [delete]
func (c *TaskController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.taskService.Delete(ctx, actorFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Task deleted"}))
}

func taskFilterFromQuery(ctx *gin.Context) repositories.TaskFilter {
	var filter repositories.TaskFilter
	if v := ctx.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := ctx.Query("status"); v != "" {
		status := models.TaskStatus(v)
		filter.Status = &status
	}
	return filter
}
