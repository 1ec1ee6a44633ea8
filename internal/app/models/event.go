package models

import "time"

// AcademicEvent defines a calendar entry (exams, deadlines, holidays)
type AcademicEvent struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	EventDate   time.Time `json:"eventDate" db:"event_date"`
	EventType   string    `json:"eventType" db:"event_type"` // exam, assignment, holiday, deadline, event
	CourseID    *int64    `json:"courseId,omitempty" db:"course_id"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	CourseName  *string `json:"courseName,omitempty"`
	CreatorName *string `json:"creatorName,omitempty"`
}
