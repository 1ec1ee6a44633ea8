package models

import "time"

// Resource defines a study resource (past papers, notes, assignments)
type Resource struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	CourseCode   *string   `json:"courseCode,omitempty" db:"course_code"`
	Year         *string   `json:"year,omitempty" db:"year"`
	ExamType     *string   `json:"examType,omitempty" db:"exam_type"` // midsem, endsem, quiz, notes
	ResourceType string    `json:"resourceType" db:"resource_type"`   // pyq, notes, assignment, other
	Tags         *string   `json:"tags,omitempty" db:"tags"`          // comma-separated
	UploadedBy   int64     `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	UploaderName *string `json:"uploaderName,omitempty"`
}
