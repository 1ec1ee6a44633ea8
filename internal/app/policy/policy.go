// Package policy centralizes authorization and entity lifecycle rules.
//
// Every mutating endpoint is guarded by exactly one of two gate shapes:
// a role-only gate (Can) or an ownership-or-role gate (CanOn), both driven
// by the declarative rule table below. Status changes on stateful entities
// go through the transition tables in transitions.go.
package policy

import (
	"github.com/aegisone/campus/internal/app/models"
)

// Actor is the authenticated principal derived from session claims.
type Actor struct {
	ID   int64
	Role models.Role
}

// Action names a guarded operation.
type Action string

const (
	// User management
	ActionUserList   Action = "user.list"
	ActionUserCreate Action = "user.create"
	ActionUserUpdate Action = "user.update"
	ActionUserDelete Action = "user.delete"
	ActionUserImport Action = "user.import"

	// Grievances
	ActionGrievanceUpdate Action = "grievance.update"
	ActionGrievanceDelete Action = "grievance.delete"

	// Courses
	ActionCourseCreate Action = "course.create"
	ActionEnroll       Action = "course.enroll"

	// Attendance
	ActionAttendanceMark Action = "attendance.mark"

	// Internships
	ActionInternshipCreate  Action = "internship.create"
	ActionApply             Action = "internship.apply"
	ActionApplicationReview Action = "internship.review"

	// Forum
	ActionForumPostDelete Action = "forum.post.delete"

	// Announcements
	ActionAnnouncementCreate Action = "announcement.create"
	ActionAnnouncementDelete Action = "announcement.delete"

	// Resources
	ActionResourceDelete Action = "resource.delete"

	// Calendar
	ActionEventCreate Action = "event.create"
	ActionEventDelete Action = "event.delete"

	// Lost and found
	ActionItemClaim  Action = "item.claim"
	ActionItemClose  Action = "item.close"
	ActionItemDelete Action = "item.delete"

	// Clubs
	ActionClubCreate Action = "club.create"
	ActionClubDelete Action = "club.delete"

	// Commons
	ActionCaravanUpdate Action = "caravan.update"
	ActionGigUpdate     Action = "gig.update"

	// Emergency
	ActionIncidentList   Action = "incident.list"
	ActionIncidentUpdate Action = "incident.update"

	// Campus map
	ActionLocationCreate Action = "location.create"
	ActionLocationDelete Action = "location.delete"
)

// Rule describes who may perform an action: a fixed role set, optionally
// widened to the resource owner.
type Rule struct {
	Roles       []models.Role
	OwnerBypass bool
}

var rules = map[Action]Rule{
	ActionUserList:   {Roles: []models.Role{models.RoleAdmin}},
	ActionUserCreate: {Roles: []models.Role{models.RoleAdmin}},
	ActionUserUpdate: {Roles: []models.Role{models.RoleAdmin}},
	ActionUserDelete: {Roles: []models.Role{models.RoleAdmin}},
	ActionUserImport: {Roles: []models.Role{models.RoleAdmin}},

	ActionGrievanceUpdate: {Roles: []models.Role{models.RoleAuthority, models.RoleAdmin}},
	ActionGrievanceDelete: {Roles: []models.Role{models.RoleAdmin}},

	ActionCourseCreate: {Roles: []models.Role{models.RoleFaculty, models.RoleAdmin}},
	ActionEnroll:       {Roles: []models.Role{models.RoleStudent}},

	ActionAttendanceMark: {Roles: []models.Role{models.RoleStudent}},

	ActionInternshipCreate:  {Roles: []models.Role{models.RoleFaculty, models.RoleAdmin}},
	ActionApply:             {Roles: []models.Role{models.RoleStudent}},
	ActionApplicationReview: {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},

	ActionForumPostDelete: {Roles: []models.Role{models.RoleAdmin, models.RoleAuthority}, OwnerBypass: true},

	ActionAnnouncementCreate: {Roles: []models.Role{models.RoleAdmin, models.RoleAuthority, models.RoleFaculty}},
	ActionAnnouncementDelete: {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},

	ActionResourceDelete: {Roles: []models.Role{models.RoleAdmin, models.RoleAuthority}, OwnerBypass: true},

	ActionEventCreate: {Roles: []models.Role{models.RoleAdmin, models.RoleAuthority, models.RoleFaculty}},
	ActionEventDelete: {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},

	ActionItemClaim:  {Roles: []models.Role{models.RoleStudent, models.RoleFaculty, models.RoleAuthority, models.RoleAdmin}},
	ActionItemClose:  {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},
	ActionItemDelete: {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},

	ActionClubCreate: {Roles: []models.Role{models.RoleAdmin}},
	ActionClubDelete: {Roles: []models.Role{models.RoleAdmin}},

	ActionCaravanUpdate: {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},
	ActionGigUpdate:     {Roles: []models.Role{models.RoleAdmin}, OwnerBypass: true},

	ActionIncidentList:   {Roles: []models.Role{models.RoleAdmin, models.RoleAuthority}},
	ActionIncidentUpdate: {Roles: []models.Role{models.RoleAdmin, models.RoleAuthority}},

	ActionLocationCreate: {Roles: []models.Role{models.RoleAdmin}},
	ActionLocationDelete: {Roles: []models.Role{models.RoleAdmin}},
}

// Can reports whether the actor's role alone permits the action.
func Can(actor Actor, action Action) bool {
	rule, ok := rules[action]
	if !ok {
		return false
	}
	return roleAllowed(actor.Role, rule.Roles)
}

// CanOn reports whether the actor may perform the action on a resource owned
// by ownerID: either the actor owns it (when the rule allows the owner) or the
// actor's role is in the rule's role set.
func CanOn(actor Actor, action Action, ownerID int64) bool {
	rule, ok := rules[action]
	if !ok {
		return false
	}
	if rule.OwnerBypass && actor.ID == ownerID {
		return true
	}
	return roleAllowed(actor.Role, rule.Roles)
}

// CanDeleteUser guards account deletion: admin only, and deleting your own
// account is forbidden regardless of role.
func CanDeleteUser(actor Actor, targetID int64) bool {
	if actor.ID == targetID {
		return false
	}
	return Can(actor, ActionUserDelete)
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// GrievanceScope describes which grievances a role may list. The filter is
// applied at the query boundary, never by post-filtering results.
type GrievanceScope int

const (
	// ScopeAll: faculty and admin see every grievance.
	ScopeAll GrievanceScope = iota
	// ScopeOwn: students see only grievances they submitted.
	ScopeOwn
	// ScopeAssignedOrUnassigned: authority sees assigned-to-self plus unassigned.
	ScopeAssignedOrUnassigned
)

// GrievanceVisibility returns the list scope for the actor's role.
func GrievanceVisibility(actor Actor) GrievanceScope {
	switch actor.Role {
	case models.RoleStudent:
		return ScopeOwn
	case models.RoleAuthority:
		return ScopeAssignedOrUnassigned
	default:
		return ScopeAll
	}
}

// CanViewGrievance reports whether the actor may read a single grievance.
// Students are limited to their own submissions; everyone else sees all.
func CanViewGrievance(actor Actor, submittedBy int64) bool {
	if actor.Role == models.RoleStudent {
		return actor.ID == submittedBy
	}
	return true
}
