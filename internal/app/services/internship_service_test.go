package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

type fakeInternshipStore struct {
	internshipStore
	internship *models.Internship
	applied    map[[2]int64]bool
}

func (f *fakeInternshipStore) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	if f.internship == nil || f.internship.ID != id {
		return nil, apperrors.ErrInternshipNotFound
	}
	return f.internship, nil
}

func (f *fakeInternshipStore) Apply(ctx context.Context, a *models.Application) error {
	key := [2]int64{a.StudentID, a.InternshipID}
	if f.applied[key] {
		return apperrors.ErrAlreadyApplied
	}
	f.applied[key] = true
	return nil
}

func TestApplyTwiceIsConflict(t *testing.T) {
	store := &fakeInternshipStore{
		internship: &models.Internship{ID: 12, Title: "Backend Intern", PostedBy: 2},
		applied:    map[[2]int64]bool{},
	}
	svc := &InternshipService{internshipRepo: store}
	student := policy.Actor{ID: 7, Role: models.RoleStudent}

	app, err := svc.Apply(context.Background(), student, 12, &dto.ApplyRequest{})
	if err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	if app.Status != models.ApplicationSubmitted {
		t.Errorf("expected submitted status, got %q", app.Status)
	}

	_, err = svc.Apply(context.Background(), student, 12, &dto.ApplyRequest{})
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Errorf("second Apply() error = %v, want ErrAlreadyApplied", err)
	}
}

func TestApplyRequiresStudentRole(t *testing.T) {
	store := &fakeInternshipStore{
		internship: &models.Internship{ID: 12, PostedBy: 2},
		applied:    map[[2]int64]bool{},
	}
	svc := &InternshipService{internshipRepo: store}
	faculty := policy.Actor{ID: 2, Role: models.RoleFaculty}

	_, err := svc.Apply(context.Background(), faculty, 12, &dto.ApplyRequest{})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Apply() error = %v, want ErrPermissionDenied", err)
	}
}
