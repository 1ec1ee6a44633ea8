package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aegisone/campus/internal/pkg/apperrors"
)

func TestUniqueAsMapsUniqueViolations(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	tests := []struct {
		name     string
		err      error
		conflict error
	}{
		{"email", dup, apperrors.ErrEmailAlreadyExists},
		{"enrollment", &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_student_course_key"}, apperrors.ErrAlreadyEnrolled},
		{"application", &pgconn.PgError{Code: "23505", ConstraintName: "applications_student_internship_key"}, apperrors.ErrAlreadyApplied},
		{"wrapped", fmt.Errorf("scan: %w", dup), apperrors.ErrEmailAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueAs(tt.err, tt.conflict, "error creating row")
			if !errors.Is(got, tt.conflict) {
				t.Errorf("uniqueAs() = %v, want %v", got, tt.conflict)
			}
		})
	}
}

func TestUniqueAsWrapsOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"foreign key violation", &pgconn.PgError{Code: "23503"}},
		{"plain error", errors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueAs(tt.err, apperrors.ErrEmailAlreadyExists, "error creating user")
			if errors.Is(got, apperrors.ErrEmailAlreadyExists) {
				t.Errorf("uniqueAs() mapped %v to conflict error", tt.err)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("uniqueAs() = %v, want wrapped %v", got, tt.err)
			}
		})
	}
}
