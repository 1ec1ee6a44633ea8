package dto

// CreateResourceRequest represents a study resource upload. The file itself
// arrives as multipart form data alongside these fields.
type CreateResourceRequest struct {
	Title        string  `form:"title" binding:"required"`
	Description  *string `form:"description"`
	CourseCode   *string `form:"courseCode"`
	Year         *string `form:"year"`
	ExamType     *string `form:"examType" binding:"omitempty,oneof=midsem endsem quiz notes"`
	ResourceType string  `form:"resourceType" binding:"omitempty,oneof=pyq notes assignment other"`
	Tags         *string `form:"tags"`
}
