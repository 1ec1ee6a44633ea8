package dto

import "github.com/aegisone/campus/internal/app/models"

// MarkAttendanceRequest represents a per-day attendance mark
type MarkAttendanceRequest struct {
	CourseID int64                   `json:"courseId" binding:"required,min=1"`
	Date     string                  `json:"date" binding:"required"` // YYYY-MM-DD
	Status   models.AttendanceStatus `json:"status" binding:"required"`
}

// CourseAttendanceSummary aggregates one course's attendance for a student
type CourseAttendanceSummary struct {
	CourseID   int64   `json:"courseId"`
	CourseName string  `json:"courseName"`
	CourseCode string  `json:"courseCode"`
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Percentage float64 `json:"percentage"`
}
