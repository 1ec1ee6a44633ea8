package dto

// CreateCourseRequest represents a new course
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description,omitempty"`
	Semester    *string `json:"semester,omitempty"`
	Credits     int     `json:"credits" binding:"omitempty,min=0,max=30"`
	CourseType  string  `json:"courseType" binding:"omitempty,oneof=major minor elective lab project"`
}
