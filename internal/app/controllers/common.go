package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/middleware"
)

// actorFrom reads the authenticated identity placed on the context by the
// JWT middleware. Routes behind auth always have it.
func actorFrom(ctx *gin.Context) policy.Actor {
	id, role, _ := middleware.CurrentActor(ctx)
	return policy.Actor{ID: id, Role: role}
}

// pathID parses the :id route parameter. On failure it writes a 400 response
// and returns false.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails("must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindingFailed writes the standard 400 response for a failed request bind
func bindingFailed(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
