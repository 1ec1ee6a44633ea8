package dto

// StudentDashboard summarizes a student's own activity
type StudentDashboard struct {
	TotalGrievances    int `json:"totalGrievances"`
	PendingGrievances  int `json:"pendingGrievances"`
	InReviewGrievances int `json:"inReviewGrievances"`
	ResolvedGrievances int `json:"resolvedGrievances"`
	EnrolledCourses    int `json:"enrolledCourses"`
	AppliedInternships int `json:"appliedInternships"`
	PendingTasks       int `json:"pendingTasks"`
}

// FacultyDashboard summarizes a faculty member's teaching surface
type FacultyDashboard struct {
	MyCourses         int `json:"myCourses"`
	TotalStudents     int `json:"totalStudents"`
	PostedInternships int `json:"postedInternships"`
}

// AuthorityDashboard summarizes the grievance workload
type AuthorityDashboard struct {
	TotalGrievances      int `json:"totalGrievances"`
	PendingGrievances    int `json:"pendingGrievances"`
	InReviewGrievances   int `json:"inReviewGrievances"`
	InProgressGrievances int `json:"inProgressGrievances"`
	ResolvedGrievances   int `json:"resolvedGrievances"`
	AssignedToMe         int `json:"assignedToMe"`
}

// AdminDashboard summarizes platform-wide counts
type AdminDashboard struct {
	TotalUsers       int `json:"totalUsers"`
	Students         int `json:"students"`
	Faculty          int `json:"faculty"`
	Authorities      int `json:"authorities"`
	Admins           int `json:"admins"`
	PendingAccounts  int `json:"pendingAccounts"`
	TotalGrievances  int `json:"totalGrievances"`
	ActiveGrievances int `json:"activeGrievances"`
	TotalCourses     int `json:"totalCourses"`
	TotalInternships int `json:"totalInternships"`
}
