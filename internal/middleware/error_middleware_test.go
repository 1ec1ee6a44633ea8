package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"grievance not found", apperrors.ErrGrievanceNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"account pending", apperrors.ErrAccountPending, 403, dto.ErrorCodeAccountPending},
		{"account rejected", apperrors.ErrAccountRejected, 403, dto.ErrorCodeAccountRejected},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"self deletion", apperrors.ErrSelfDeletion, 403, dto.ErrorCodeForbidden},
		{"bad credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"invalid state", apperrors.ErrInvalidState, 400, dto.ErrorCodeInvalidState},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, 400, dto.ErrorCodeResourceAlreadyExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, 400, dto.ErrorCodeResourceAlreadyExists},
		{"item not open", apperrors.ErrItemNotOpen, 400, dto.ErrorCodeResourceAlreadyExists},
		{"foreign email", apperrors.ErrForeignEmailDomain, 400, dto.ErrorCodeValidationFailed},
		{"invalid assignee", apperrors.ErrInvalidAssignee, 400, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), 500, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := respondWith(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Success {
				t.Error("expected success=false")
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error code = %v, want %s", body.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("while moving grievance: %w", apperrors.ErrInvalidState)
	w, body := respondWith(t, wrapped)
	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body.Error == nil || body.Error.Code != dto.ErrorCodeInvalidState {
		t.Errorf("error code = %v, want %s", body.Error, dto.ErrorCodeInvalidState)
	}
}

func TestHandleAPIErrorCustomErrorKeepsMessage(t *testing.T) {
	w, body := respondWith(t, apperrors.NewConflictError("club with this name already exists"))
	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body.Error == nil || body.Error.Message != "club with this name already exists" {
		t.Errorf("unexpected error detail: %+v", body.Error)
	}
}
