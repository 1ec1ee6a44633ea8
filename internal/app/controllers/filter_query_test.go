package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/models"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestGrievanceFilterFromQuery(t *testing.T) {
	filter := grievanceFilterFromQuery(queryContext(t, "status=pending&category=hostel"))
	if filter.Status == nil || *filter.Status != models.GrievancePending {
		t.Errorf("Status = %v, want pending", filter.Status)
	}
	if filter.Category == nil || *filter.Category != "hostel" {
		t.Errorf("Category = %v, want hostel", filter.Category)
	}
	if filter.Priority != nil {
		t.Errorf("Priority = %v, want nil for absent param", filter.Priority)
	}
}

func TestGrievanceFilterFromQueryEmpty(t *testing.T) {
	filter := grievanceFilterFromQuery(queryContext(t, ""))
	if filter.Status != nil || filter.Category != nil || filter.Priority != nil {
		t.Errorf("expected all-nil filter for empty query, got %+v", filter)
	}
}

func TestItemFilterFromQuery(t *testing.T) {
	filter := itemFilterFromQuery(queryContext(t, "itemType=lost&status=open"))
	if filter.ItemType == nil || *filter.ItemType != "lost" {
		t.Errorf("ItemType = %v, want lost", filter.ItemType)
	}
	if filter.Status == nil || *filter.Status != models.ItemOpen {
		t.Errorf("Status = %v, want open", filter.Status)
	}
	if filter.Category != nil {
		t.Errorf("Category = %v, want nil for absent param", filter.Category)
	}
}

func TestTaskFilterFromQuery(t *testing.T) {
	filter := taskFilterFromQuery(queryContext(t, "status=in_progress"))
	if filter.Status == nil || *filter.Status != models.TaskInProgress {
		t.Errorf("Status = %v, want in_progress", filter.Status)
	}
	if filter.Category != nil {
		t.Errorf("Category = %v, want nil for absent param", filter.Category)
	}
}

func TestResourceFilterFromQuery(t *testing.T) {
	filter := resourceFilterFromQuery(queryContext(t, "courseCode=CS202&examType=midterm"))
	if filter.CourseCode == nil || *filter.CourseCode != "CS202" {
		t.Errorf("CourseCode = %v, want CS202", filter.CourseCode)
	}
	if filter.ExamType == nil || *filter.ExamType != "midterm" {
		t.Errorf("ExamType = %v, want midterm", filter.ExamType)
	}
	if filter.ResourceType != nil {
		t.Errorf("ResourceType = %v, want nil for absent param", filter.ResourceType)
	}
}
