package services

import (
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/config"
	"github.com/aegisone/campus/internal/pkg/auth"
	"github.com/aegisone/campus/internal/pkg/filestorage"
)

// Services aggregates all service instances for dependency injection
type Services struct {
	Auth         *AuthService
	User         *UserService
	Grievance    *GrievanceService
	Course       *CourseService
	Attendance   *AttendanceService
	Internship   *InternshipService
	Forum        *ForumService
	Announcement *AnnouncementService
	Resource     *ResourceService
	Event        *EventService
	Task         *TaskService
	LostFound    *LostFoundService
	Club         *ClubService
	Commons      *CommonsService
	Emergency    *EmergencyService
	Map          *MapService
	Dashboard    *DashboardService
}

// NewServices wires every service to its repositories and shared dependencies
func NewServices(repos *repositories.Repositories, cfg *config.Config, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		Auth:         NewAuthService(repos.UserRepository, jwtService, cfg.Campus.EmailDomain),
		User:         NewUserService(repos.UserRepository, cfg.Campus.DefaultImportPassword),
		Grievance:    NewGrievanceService(repos.GrievanceRepository, repos.UserRepository),
		Course:       NewCourseService(repos.CourseRepository),
		Attendance:   NewAttendanceService(repos.AttendanceRepository, repos.CourseRepository),
		Internship:   NewInternshipService(repos.InternshipRepository),
		Forum:        NewForumService(repos.ForumRepository),
		Announcement: NewAnnouncementService(repos.AnnouncementRepository),
		Resource:     NewResourceService(repos.ResourceRepository, storage),
		Event:        NewEventService(repos.EventRepository, repos.CourseRepository),
		Task:         NewTaskService(repos.TaskRepository),
		LostFound:    NewLostFoundService(repos.LostFoundRepository, storage),
		Club:         NewClubService(repos.ClubRepository, repos.UserRepository),
		Commons:      NewCommonsService(repos.CommonsRepository, repos.UserRepository),
		Emergency:    NewEmergencyService(repos.IncidentRepository),
		Map:          NewMapService(repos.LocationRepository),
		Dashboard:    NewDashboardService(repos.UserRepository, repos.GrievanceRepository, repos.CourseRepository, repos.InternshipRepository, repos.TaskRepository),
	}
}
