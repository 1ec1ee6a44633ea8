package dto

import "github.com/aegisone/campus/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Name       string      `json:"name" binding:"required"`
	Password   string      `json:"password" binding:"required,min=8"`
	Role       models.Role `json:"role" binding:"required"`
	Department *string     `json:"department,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}
