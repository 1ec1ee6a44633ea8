package services

import (
	"context"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/app/repositories"
)

// DashboardService aggregates role-shaped summary counts
type DashboardService struct {
	userRepo       *repositories.UserRepository
	grievanceRepo  *repositories.GrievanceRepository
	courseRepo     *repositories.CourseRepository
	internshipRepo *repositories.InternshipRepository
	taskRepo       *repositories.TaskRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	userRepo *repositories.UserRepository,
	grievanceRepo *repositories.GrievanceRepository,
	courseRepo *repositories.CourseRepository,
	internshipRepo *repositories.InternshipRepository,
	taskRepo *repositories.TaskRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		grievanceRepo:  grievanceRepo,
		courseRepo:     courseRepo,
		internshipRepo: internshipRepo,
		taskRepo:       taskRepo,
	}
}

// Summary returns the dashboard shape matching the actor's role
func (s *DashboardService) Summary(ctx context.Context, actor policy.Actor) (interface{}, error) {
	switch actor.Role {
	case models.RoleFaculty:
		return s.facultySummary(ctx, actor)
	case models.RoleAuthority:
		return s.authoritySummary(ctx, actor)
	case models.RoleAdmin:
		return s.adminSummary(ctx)
	default:
		return s.studentSummary(ctx, actor)
	}
}

func (s *DashboardService) studentSummary(ctx context.Context, actor policy.Actor) (*dto.StudentDashboard, error) {
	byStatus, err := s.grievanceRepo.CountByStatus(ctx, &actor.ID)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.courseRepo.CountEnrollmentsByStudent(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	applied, err := s.internshipRepo.CountApplicationsByStudent(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	openTasks, err := s.taskRepo.CountPending(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}
	return &dto.StudentDashboard{
		TotalGrievances:    total,
		PendingGrievances:  byStatus[models.GrievancePending],
		InReviewGrievances: byStatus[models.GrievanceInReview],
		ResolvedGrievances: byStatus[models.GrievanceResolved],
		EnrolledCourses:    enrolled,
		AppliedInternships: applied,
		PendingTasks:       openTasks,
	}, nil
}

func (s *DashboardService) facultySummary(ctx context.Context, actor policy.Actor) (*dto.FacultyDashboard, error) {
	courses, err := s.courseRepo.CountByFaculty(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	students, err := s.courseRepo.CountStudentsForFaculty(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	internships, err := s.internshipRepo.CountByPoster(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &dto.FacultyDashboard{
		MyCourses:         courses,
		TotalStudents:     students,
		PostedInternships: internships,
	}, nil
}

func (s *DashboardService) authoritySummary(ctx context.Context, actor policy.Actor) (*dto.AuthorityDashboard, error) {
	byStatus, err := s.grievanceRepo.CountByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}
	assigned, err := s.grievanceRepo.CountAssignedTo(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}
	return &dto.AuthorityDashboard{
		TotalGrievances:      total,
		PendingGrievances:    byStatus[models.GrievancePending],
		InReviewGrievances:   byStatus[models.GrievanceInReview],
		InProgressGrievances: byStatus[models.GrievanceInProgress],
		ResolvedGrievances:   byStatus[models.GrievanceResolved],
		AssignedToMe:         assigned,
	}, nil
}

func (s *DashboardService) adminSummary(ctx context.Context) (*dto.AdminDashboard, error) {
	byRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.userRepo.CountByStatus(ctx, models.AccountPending)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.grievanceRepo.CountByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	internships, err := s.internshipRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers := 0
	for _, n := range byRole {
		totalUsers += n
	}
	totalGrievances := 0
	for _, n := range byStatus {
		totalGrievances += n
	}
	active := byStatus[models.GrievancePending] + byStatus[models.GrievanceInReview] + byStatus[models.GrievanceInProgress]

	return &dto.AdminDashboard{
		TotalUsers:       totalUsers,
		Students:         byRole[models.RoleStudent],
		Faculty:          byRole[models.RoleFaculty],
		Authorities:      byRole[models.RoleAuthority],
		Admins:           byRole[models.RoleAdmin],
		PendingAccounts:  pending,
		TotalGrievances:  totalGrievances,
		ActiveGrievances: active,
		TotalCourses:     courses,
		TotalInternships: internships,
	}, nil
}
