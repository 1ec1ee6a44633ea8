package models

import "time"

// Role defines the user role, the primary axis of authorization
type Role string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleAuthority Role = "authority"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAuthority, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus defines the onboarding state of a user account
type AccountStatus string

const (
	AccountPending  AccountStatus = "pending"
	AccountActive   AccountStatus = "active"
	AccountRejected AccountStatus = "rejected"
)

// ValidAccountStatus reports whether s is one of the known account statuses
func ValidAccountStatus(s AccountStatus) bool {
	switch s {
	case AccountPending, AccountActive, AccountRejected:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID             int64         `json:"id" db:"id" example:"1"`
	Email          string        `json:"email" db:"email" example:"student1@iitmandi.ac.in"`
	Name           string        `json:"name" db:"name" example:"Asha Verma"`
	Password       string        `json:"-" db:"hashed_password"` // bcrypt hash, excluded from JSON
	Role           Role          `json:"role" db:"role" example:"student"`
	Status         AccountStatus `json:"status" db:"status" example:"pending"`
	Department     *string       `json:"department,omitempty" db:"department"`
	ManagedModules *string       `json:"managedModules,omitempty" db:"managed_modules"` // comma-separated module list
	CreatedAt      time.Time     `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
