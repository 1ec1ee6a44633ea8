package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	GrievanceRepository    *GrievanceRepository
	CourseRepository       *CourseRepository
	AttendanceRepository   *AttendanceRepository
	InternshipRepository   *InternshipRepository
	ForumRepository        *ForumRepository
	AnnouncementRepository *AnnouncementRepository
	ResourceRepository     *ResourceRepository
	EventRepository        *EventRepository
	TaskRepository         *TaskRepository
	LostFoundRepository    *LostFoundRepository
	ClubRepository         *ClubRepository
	CommonsRepository      *CommonsRepository
	IncidentRepository     *IncidentRepository
	LocationRepository     *LocationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		GrievanceRepository:    NewGrievanceRepository(db),
		CourseRepository:       NewCourseRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		InternshipRepository:   NewInternshipRepository(db),
		ForumRepository:        NewForumRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		ResourceRepository:     NewResourceRepository(db),
		EventRepository:        NewEventRepository(db),
		TaskRepository:         NewTaskRepository(db),
		LostFoundRepository:    NewLostFoundRepository(db),
		ClubRepository:         NewClubRepository(db),
		CommonsRepository:      NewCommonsRepository(db),
		IncidentRepository:     NewIncidentRepository(db),
		LocationRepository:     NewLocationRepository(db),
	}
}
