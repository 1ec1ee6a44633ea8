package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/controllers"
	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.Auth.Register)
		auth.POST("/login", ctrls.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrls.Auth.Me)
		authenticated.GET("/dashboard", ctrls.Dashboard.Summary)

		// User management (admin only)
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RolesRequired(models.RoleAdmin))
		{
			users.GET("", ctrls.User.List)
			users.POST("", ctrls.User.Create)
			users.POST("/bulk-import", ctrls.User.Import)
			users.GET("/:id", ctrls.User.Get)
			users.PUT("/:id", ctrls.User.Update)
			users.DELETE("/:id", ctrls.User.Delete)
		}

		// Grievances
		grievances := authenticated.Group("/grievances")
		{
			grievances.POST("", ctrls.Grievance.Create)
			grievances.GET("", ctrls.Grievance.List)
			grievances.GET("/:id", ctrls.Grievance.Get)
			grievances.POST("/:id/comments", ctrls.Grievance.AddComment)
			grievances.GET("/:id/comments", ctrls.Grievance.ListComments)

			grievanceTriage := grievances.Group("")
			grievanceTriage.Use(authMiddleware.RolesRequired(models.RoleAuthority, models.RoleAdmin))
			{
				grievanceTriage.PUT("/:id", ctrls.Grievance.Update)
			}
			grievanceAdmin := grievances.Group("")
			grievanceAdmin.Use(authMiddleware.RolesRequired(models.RoleAdmin))
			{
				grievanceAdmin.DELETE("/:id", ctrls.Grievance.Delete)
			}
		}

		// Courses and enrollment
		courses := authenticated.Group("/courses")
		{
			courses.GET("", ctrls.Course.List)
			courses.GET("/my-enrollments", ctrls.Course.MyEnrollments)
			courses.GET("/:id", ctrls.Course.Get)
			courses.POST("/:id/enroll", ctrls.Course.Enroll)

			coursesFaculty := courses.Group("")
			coursesFaculty.Use(authMiddleware.RolesRequired(models.RoleFaculty, models.RoleAdmin))
			{
				coursesFaculty.POST("", ctrls.Course.Create)
			}
		}

		// Attendance
		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("", ctrls.Attendance.Mark)
			attendance.GET("", ctrls.Attendance.List)
			attendance.GET("/summary", ctrls.Attendance.Summary)
		}

		// Internships and applications
		internships := authenticated.Group("/internships")
		{
			internships.GET("", ctrls.Internship.List)
			internships.GET("/my-applications", ctrls.Internship.MyApplications)
			internships.GET("/:id", ctrls.Internship.Get)
			internships.POST("/:id/apply", ctrls.Internship.Apply)
			internships.GET("/:id/applications", ctrls.Internship.ListApplications)

			internshipsFaculty := internships.Group("")
			internshipsFaculty.Use(authMiddleware.RolesRequired(models.RoleFaculty, models.RoleAdmin))
			{
				internshipsFaculty.POST("", ctrls.Internship.Create)
			}
		}
		authenticated.PUT("/applications/:id", ctrls.Internship.Review)

		// Forum
		forum := authenticated.Group("/forum/posts")
		{
			forum.POST("", ctrls.Forum.CreatePost)
			forum.GET("", ctrls.Forum.ListPosts)
			forum.GET("/:id", ctrls.Forum.GetPost)
			forum.DELETE("/:id", ctrls.Forum.DeletePost)
			forum.POST("/:id/comments", ctrls.Forum.AddComment)
			forum.POST("/:id/vote", ctrls.Forum.Vote)
		}

		// Announcements
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", ctrls.Announcement.List)
			announcements.DELETE("/:id", ctrls.Announcement.Delete)

			announcementsStaff := announcements.Group("")
			announcementsStaff.Use(authMiddleware.RolesRequired(models.RoleFaculty, models.RoleAuthority, models.RoleAdmin))
			{
				announcementsStaff.POST("", ctrls.Announcement.Create)
			}
		}

		// Study resources
		resources := authenticated.Group("/resources")
		{
			resources.POST("", ctrls.Resource.Create)
			resources.GET("", ctrls.Resource.List)
			resources.GET("/:id", ctrls.Resource.Get)
			resources.DELETE("/:id", ctrls.Resource.Delete)
		}

		// Academic calendar
		events := authenticated.Group("/events")
		{
			events.GET("", ctrls.Event.List)
			events.DELETE("/:id", ctrls.Event.Delete)

			eventsStaff := events.Group("")
			eventsStaff.Use(authMiddleware.RolesRequired(models.RoleFaculty, models.RoleAuthority, models.RoleAdmin))
			{
				eventsStaff.POST("", ctrls.Event.Create)
			}
		}

		// Personal tasks
		tasks := authenticated.Group("/tasks")
		{
			tasks.POST("", ctrls.Task.Create)
			tasks.GET("", ctrls.Task.List)
			tasks.PUT("/:id", ctrls.Task.Update)
			tasks.DELETE("/:id", ctrls.Task.Delete)
		}

		// Lost and found
		lostfound := authenticated.Group("/lostfound")
		{
			lostfound.POST("", ctrls.LostFound.Create)
			lostfound.GET("", ctrls.LostFound.List)
			lostfound.GET("/:id", ctrls.LostFound.Get)
			lostfound.POST("/:id/claim", ctrls.LostFound.Claim)
			lostfound.POST("/:id/close", ctrls.LostFound.Close)
			lostfound.DELETE("/:id", ctrls.LostFound.Delete)
		}

		// Clubs
		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", ctrls.Club.List)
			clubs.GET("/:id", ctrls.Club.Get)
			clubs.POST("/:id/join", ctrls.Club.Join)
			clubs.POST("/:id/events", ctrls.Club.CreateEvent)
			clubs.POST("/:id/announcements", ctrls.Club.CreateAnnouncement)

			clubsAdmin := clubs.Group("")
			clubsAdmin.Use(authMiddleware.RolesRequired(models.RoleAdmin))
			{
				clubsAdmin.POST("", ctrls.Club.Create)
				clubsAdmin.DELETE("/:id", ctrls.Club.Delete)
			}
		}

		// Student commons
		commons := authenticated.Group("/commons")
		{
			commons.POST("/caravans", ctrls.Commons.CreateCaravan)
			commons.GET("/caravans", ctrls.Commons.ListCaravans)
			commons.PUT("/caravans/:id", ctrls.Commons.UpdateCaravan)
			commons.POST("/gigs", ctrls.Commons.CreateGig)
			commons.GET("/gigs", ctrls.Commons.ListGigs)
			commons.PUT("/gigs/:id", ctrls.Commons.UpdateGig)
		}

		// Emergency SOS
		emergency := authenticated.Group("/emergency/incidents")
		{
			emergency.POST("", ctrls.Emergency.Report)

			emergencyStaff := emergency.Group("")
			emergencyStaff.Use(authMiddleware.RolesRequired(models.RoleAuthority, models.RoleAdmin))
			{
				emergencyStaff.GET("", ctrls.Emergency.List)
				emergencyStaff.PUT("/:id", ctrls.Emergency.Update)
			}
		}

		// Campus map
		locations := authenticated.Group("/map/locations")
		{
			locations.GET("", ctrls.Map.List)

			locationsAdmin := locations.Group("")
			locationsAdmin.Use(authMiddleware.RolesRequired(models.RoleAdmin))
			{
				locationsAdmin.POST("", ctrls.Map.Create)
				locationsAdmin.DELETE("/:id", ctrls.Map.Delete)
			}
		}
	}

	// Unknown routes get the standard envelope too
	router.NoRoute(func(ctx *gin.Context) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
	})
}
