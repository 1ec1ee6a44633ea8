package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/auth"
	"github.com/aegisone/campus/internal/pkg/logger"
)

// UserService handles admin user management and bulk onboarding
type UserService struct {
	userRepo              *repositories.UserRepository
	defaultImportPassword string
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, defaultImportPassword string) *UserService {
	return &UserService{
		userRepo:              userRepo,
		defaultImportPassword: defaultImportPassword,
	}
}

// List returns users, optionally filtered by role and account status
func (s *UserService) List(ctx context.Context, actor policy.Actor, role *models.Role, status *models.AccountStatus) ([]*models.User, error) {
	if !policy.Can(actor, policy.ActionUserList) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.userRepo.List(ctx, role, status)
}

// Get returns a single user by id
func (s *UserService) Get(ctx context.Context, actor policy.Actor, id int64) (*models.User, error) {
	if !policy.Can(actor, policy.ActionUserList) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.userRepo.GetByID(ctx, id)
}

// Create adds a user directly in active status, bypassing approval
func (s *UserService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateUserRequest) (*models.User, error) {
	if !policy.Can(actor, policy.ActionUserCreate) {
		return nil, apperrors.ErrPermissionDenied
	}
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("invalid role")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      strings.ToLower(req.Email),
		Name:       req.Name,
		Password:   hashed,
		Role:       req.Role,
		Status:     models.AccountActive,
		Department: req.Department,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update. Used both for profile edits and for
// approving or rejecting pending registrations.
func (s *UserService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if !policy.Can(actor, policy.ActionUserUpdate) {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Department != nil {
		user.Department = req.Department
	}
	if req.ManagedModules != nil {
		user.ManagedModules = req.ManagedModules
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, apperrors.NewValidationError("invalid role")
		}
		user.Role = *req.Role
	}
	if req.Status != nil {
		if !models.ValidAccountStatus(*req.Status) {
			return nil, apperrors.NewValidationError("invalid account status")
		}
		user.Status = *req.Status
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Self-deletion is refused regardless of role.
func (s *UserService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if !policy.CanDeleteUser(actor, id) {
		if actor.ID == id {
			return apperrors.ErrSelfDeletion
		}
		return apperrors.ErrPermissionDenied
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// ImportRow is one parsed CSV record before any database work
type ImportRow struct {
	Line       int
	Email      string
	Name       string
	Role       models.Role
	Department *string
}

// ParseUserImportCSV reads a bulk-import CSV with columns
// email,name,role[,department]. A header line is detected and skipped.
// Structurally bad rows become skips, never errors: one malformed line
// must not abort the whole import.
func ParseUserImportCSV(r io.Reader) ([]ImportRow, []dto.ImportSkip, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []ImportRow
	var skips []dto.ImportSkip
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skips = append(skips, dto.ImportSkip{Row: line, Reason: "malformed CSV row"})
			continue
		}
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "email") {
			continue
		}

		var email, name, role, department string
		if len(record) > 0 {
			email = strings.ToLower(strings.TrimSpace(record[0]))
		}
		if len(record) > 1 {
			name = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			role = strings.ToLower(strings.TrimSpace(record[2]))
		}
		if len(record) > 3 {
			department = strings.TrimSpace(record[3])
		}

		if email == "" {
			skips = append(skips, dto.ImportSkip{Row: line, Reason: "missing email"})
			continue
		}
		if name == "" {
			skips = append(skips, dto.ImportSkip{Row: line, Email: email, Reason: "missing name"})
			continue
		}

		// Unknown or absent role defaults to student.
		parsed := models.Role(role)
		if !models.ValidRole(parsed) {
			parsed = models.RoleStudent
		}

		row := ImportRow{Line: line, Email: email, Name: name, Role: parsed}
		if department != "" {
			row.Department = &department
		}
		rows = append(rows, row)
	}
	return rows, skips, nil
}

// BulkImport creates accounts from a CSV stream. Imported accounts are
// active immediately and share a default password the user must change.
func (s *UserService) BulkImport(ctx context.Context, actor policy.Actor, r io.Reader) (*dto.ImportReport, error) {
	if !policy.Can(actor, policy.ActionUserImport) {
		return nil, apperrors.ErrPermissionDenied
	}

	rows, skips, err := ParseUserImportCSV(r)
	if err != nil {
		return nil, apperrors.NewValidationError("could not read CSV file")
	}

	hashed, err := auth.HashPassword(s.defaultImportPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	users := make([]*models.User, len(rows))
	for i, row := range rows {
		users[i] = &models.User{
			Email:      row.Email,
			Name:       row.Name,
			Password:   hashed,
			Role:       row.Role,
			Status:     models.AccountActive,
			Department: row.Department,
		}
	}
	duplicates, err := s.userRepo.CreateAll(ctx, users)
	if err != nil {
		return nil, fmt.Errorf("bulk import failed: %w", err)
	}

	report := buildImportReport(rows, skips, duplicates)
	logger.Info().Int("imported", report.Imported).Int("skipped", len(report.Skipped)).Msg("Bulk user import finished")
	return report, nil
}

// buildImportReport merges parse-time skips with the duplicate-email indices
// reported by the repository. Valid rows survive invalid ones.
func buildImportReport(rows []ImportRow, parseSkips []dto.ImportSkip, duplicates []int) *dto.ImportReport {
	report := &dto.ImportReport{Skipped: parseSkips}
	for _, i := range duplicates {
		report.Skipped = append(report.Skipped, dto.ImportSkip{Row: rows[i].Line, Email: rows[i].Email, Reason: "email already registered"})
	}
	report.Imported = len(rows) - len(duplicates)
	if report.Skipped == nil {
		report.Skipped = []dto.ImportSkip{}
	}
	return report
}
