package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

type fakeAttendanceStore struct {
	attendanceStore
	marks map[string]models.AttendanceStatus
}

func (f *fakeAttendanceStore) Upsert(ctx context.Context, a *models.Attendance) error {
	key := fmt.Sprintf("%d/%d/%s", a.StudentID, a.CourseID, a.Date.Format("2006-01-02"))
	f.marks[key] = a.Status
	return nil
}

type fakeEnrollment struct{ enrolled bool }

func (f fakeEnrollment) IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	return f.enrolled, nil
}

func TestMarkSameDayOverwrites(t *testing.T) {
	store := &fakeAttendanceStore{marks: map[string]models.AttendanceStatus{}}
	svc := &AttendanceService{attendanceRepo: store, courseRepo: fakeEnrollment{enrolled: true}}
	student := policy.Actor{ID: 7, Role: models.RoleStudent}

	if _, err := svc.Mark(context.Background(), student, &dto.MarkAttendanceRequest{
		CourseID: 3, Date: "2026-02-09", Status: models.AttendancePresent,
	}); err != nil {
		t.Fatalf("first Mark() error = %v", err)
	}
	if _, err := svc.Mark(context.Background(), student, &dto.MarkAttendanceRequest{
		CourseID: 3, Date: "2026-02-09", Status: models.AttendanceAbsent,
	}); err != nil {
		t.Fatalf("second Mark() error = %v", err)
	}

	if len(store.marks) != 1 {
		t.Fatalf("expected one mark for the day, got %d", len(store.marks))
	}
	if got := store.marks["7/3/2026-02-09"]; got != models.AttendanceAbsent {
		t.Errorf("expected the later status to win, got %q", got)
	}
}

func TestMarkRequiresEnrollment(t *testing.T) {
	store := &fakeAttendanceStore{marks: map[string]models.AttendanceStatus{}}
	svc := &AttendanceService{attendanceRepo: store, courseRepo: fakeEnrollment{enrolled: false}}
	student := policy.Actor{ID: 7, Role: models.RoleStudent}

	_, err := svc.Mark(context.Background(), student, &dto.MarkAttendanceRequest{
		CourseID: 3, Date: "2026-02-09", Status: models.AttendancePresent,
	})
	if !errors.Is(err, apperrors.ErrNotEnrolled) {
		t.Errorf("Mark() error = %v, want ErrNotEnrolled", err)
	}
	if len(store.marks) != 0 {
		t.Errorf("expected no mark recorded, got %d", len(store.marks))
	}
}

func TestAttendancePercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{"no marks yet", 0, 0, 0},
		{"all present", 10, 10, 100},
		{"none present", 0, 5, 0},
		{"two thirds", 2, 3, 66.7},
		{"one third", 1, 3, 33.3},
		{"rounds half up", 1, 8, 12.5},
		{"single present", 1, 1, 100},
		{"seven of nine", 7, 9, 77.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendancePercentage(tt.present, tt.total); got != tt.want {
				t.Errorf("AttendancePercentage(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}
