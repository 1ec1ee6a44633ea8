package controllers

import (
	"github.com/aegisone/campus/internal/app/services"
)

// Controllers aggregates all controller instances for route registration
type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Grievance    *GrievanceController
	Course       *CourseController
	Attendance   *AttendanceController
	Internship   *InternshipController
	Forum        *ForumController
	Announcement *AnnouncementController
	Resource     *ResourceController
	Event        *EventController
	Task         *TaskController
	LostFound    *LostFoundController
	Club         *ClubController
	Commons      *CommonsController
	Emergency    *EmergencyController
	Map          *MapController
	Dashboard    *DashboardController
}

// NewControllers wires every controller to its service
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(svcs.Auth),
		User:         NewUserController(svcs.User),
		Grievance:    NewGrievanceController(svcs.Grievance),
		Course:       NewCourseController(svcs.Course),
		Attendance:   NewAttendanceController(svcs.Attendance),
		Internship:   NewInternshipController(svcs.Internship),
		Forum:        NewForumController(svcs.Forum),
		Announcement: NewAnnouncementController(svcs.Announcement),
		Resource:     NewResourceController(svcs.Resource),
		Event:        NewEventController(svcs.Event),
		Task:         NewTaskController(svcs.Task),
		LostFound:    NewLostFoundController(svcs.LostFound),
		Club:         NewClubController(svcs.Club),
		Commons:      NewCommonsController(svcs.Commons),
		Emergency:    NewEmergencyController(svcs.Emergency),
		Map:          NewMapController(svcs.Map),
		Dashboard:    NewDashboardController(svcs.Dashboard),
	}
}
