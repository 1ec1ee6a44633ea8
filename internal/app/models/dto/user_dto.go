package dto

import "github.com/aegisone/campus/internal/app/models"

// CreateUserRequest represents an admin manual user creation
type CreateUserRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Name       string      `json:"name" binding:"required"`
	Password   string      `json:"password" binding:"required,min=8"`
	Role       models.Role `json:"role" binding:"required"`
	Department *string     `json:"department,omitempty"`
}

// UpdateUserRequest represents an admin user update; all fields optional
type UpdateUserRequest struct {
	Name           *string               `json:"name,omitempty"`
	Department     *string               `json:"department,omitempty"`
	Role           *models.Role          `json:"role,omitempty"`
	Status         *models.AccountStatus `json:"status,omitempty"`
	ManagedModules *string               `json:"managedModules,omitempty"`
}

// ImportSkip describes one CSV row that was not imported
type ImportSkip struct {
	Row    int    `json:"row"`
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason"`
}

// ImportReport summarizes a bulk user import
type ImportReport struct {
	Imported int          `json:"imported"`
	Skipped  []ImportSkip `json:"skipped"`
}
