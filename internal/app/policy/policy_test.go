package policy

import (
	"testing"

	"github.com/aegisone/campus/internal/app/models"
)

func TestRoleOnlyGates(t *testing.T) {
	cases := []struct {
		action Action
		role   models.Role
		want   bool
	}{
		{ActionCourseCreate, models.RoleFaculty, true},
		{ActionCourseCreate, models.RoleAdmin, true},
		{ActionCourseCreate, models.RoleStudent, false},
		{ActionCourseCreate, models.RoleAuthority, false},
		{ActionGrievanceUpdate, models.RoleAuthority, true},
		{ActionGrievanceUpdate, models.RoleAdmin, true},
		{ActionGrievanceUpdate, models.RoleFaculty, false},
		{ActionGrievanceUpdate, models.RoleStudent, false},
		{ActionEnroll, models.RoleStudent, true},
		{ActionEnroll, models.RoleFaculty, false},
		{ActionUserList, models.RoleAdmin, true},
		{ActionUserList, models.RoleAuthority, false},
		{ActionIncidentList, models.RoleAuthority, true},
		{ActionIncidentList, models.RoleAdmin, true},
		{ActionIncidentList, models.RoleStudent, false},
		{ActionClubCreate, models.RoleAdmin, true},
		{ActionClubCreate, models.RoleFaculty, false},
		{ActionAnnouncementCreate, models.RoleFaculty, true},
		{ActionAnnouncementCreate, models.RoleStudent, false},
	}
	for _, tc := range cases {
		actor := Actor{ID: 7, Role: tc.role}
		if got := Can(actor, tc.action); got != tc.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestOwnershipOrRoleGates(t *testing.T) {
	owner := Actor{ID: 10, Role: models.RoleStudent}
	stranger := Actor{ID: 11, Role: models.RoleStudent}
	admin := Actor{ID: 12, Role: models.RoleAdmin}
	authority := Actor{ID: 13, Role: models.RoleAuthority}

	if !CanOn(owner, ActionForumPostDelete, 10) {
		t.Error("post owner should be able to delete their own post")
	}
	if CanOn(stranger, ActionForumPostDelete, 10) {
		t.Error("unrelated student must not delete someone else's post")
	}
	if !CanOn(admin, ActionForumPostDelete, 10) {
		t.Error("admin should be able to delete any post")
	}
	if !CanOn(authority, ActionForumPostDelete, 10) {
		t.Error("authority should be able to delete any post")
	}

	// Application review widens admin to the posting faculty only.
	poster := Actor{ID: 20, Role: models.RoleFaculty}
	otherFaculty := Actor{ID: 21, Role: models.RoleFaculty}
	if !CanOn(poster, ActionApplicationReview, 20) {
		t.Error("posting faculty should review applications for their internship")
	}
	if CanOn(otherFaculty, ActionApplicationReview, 20) {
		t.Error("non-posting faculty must not review another faculty's applications")
	}
	if !CanOn(admin, ActionApplicationReview, 20) {
		t.Error("admin should review any internship's applications")
	}
}

func TestUnknownActionDenied(t *testing.T) {
	admin := Actor{ID: 1, Role: models.RoleAdmin}
	if Can(admin, Action("nonexistent")) {
		t.Error("unknown action must be denied even for admin")
	}
	if CanOn(admin, Action("nonexistent"), 1) {
		t.Error("unknown ownership action must be denied even for owner")
	}
}

func TestSelfDeletionForbidden(t *testing.T) {
	admin := Actor{ID: 5, Role: models.RoleAdmin}
	if CanDeleteUser(admin, 5) {
		t.Error("admin must not delete their own account")
	}
	if !CanDeleteUser(admin, 6) {
		t.Error("admin should delete other accounts")
	}
	student := Actor{ID: 7, Role: models.RoleStudent}
	if CanDeleteUser(student, 8) {
		t.Error("student must not delete accounts")
	}
}

func TestGrievanceVisibility(t *testing.T) {
	if got := GrievanceVisibility(Actor{Role: models.RoleStudent}); got != ScopeOwn {
		t.Errorf("student scope = %v, want ScopeOwn", got)
	}
	if got := GrievanceVisibility(Actor{Role: models.RoleAuthority}); got != ScopeAssignedOrUnassigned {
		t.Errorf("authority scope = %v, want ScopeAssignedOrUnassigned", got)
	}
	if got := GrievanceVisibility(Actor{Role: models.RoleFaculty}); got != ScopeAll {
		t.Errorf("faculty scope = %v, want ScopeAll", got)
	}
	if got := GrievanceVisibility(Actor{Role: models.RoleAdmin}); got != ScopeAll {
		t.Errorf("admin scope = %v, want ScopeAll", got)
	}
}

func TestCanViewGrievance(t *testing.T) {
	student := Actor{ID: 3, Role: models.RoleStudent}
	if !CanViewGrievance(student, 3) {
		t.Error("student should view their own grievance")
	}
	if CanViewGrievance(student, 4) {
		t.Error("student must not view another student's grievance")
	}
	if !CanViewGrievance(Actor{ID: 9, Role: models.RoleAuthority}, 4) {
		t.Error("authority should view any grievance")
	}
}
