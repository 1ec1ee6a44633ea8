package models

import "time"

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"`
	Semester    *string   `json:"semester,omitempty" db:"semester"`
	Credits     int       `json:"credits" db:"credits"`
	CourseType  string    `json:"courseType" db:"course_type"` // major, minor, elective, lab, project
	FacultyID   int64     `json:"facultyId" db:"faculty_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	FacultyName     *string `json:"facultyName,omitempty"`
	EnrollmentCount int     `json:"enrollmentCount"`
	IsEnrolled      bool    `json:"isEnrolled"`
}

// Enrollment links a student to a course, unique per (student, course)
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	Course *Course `json:"course,omitempty"`
}
