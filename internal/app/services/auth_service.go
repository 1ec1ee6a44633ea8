package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
	"github.com/aegisone/campus/internal/app/repositories"
	"github.com/aegisone/campus/internal/pkg/apperrors"
	"github.com/aegisone/campus/internal/pkg/auth"
	"github.com/aegisone/campus/internal/pkg/logger"
)

// AuthService handles registration, login and profile reads
type AuthService struct {
	userRepo    *repositories.UserRepository
	jwtService  *auth.JWTService
	emailDomain string
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, emailDomain string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		emailDomain: emailDomain,
	}
}

// ValidCampusEmail reports whether the email belongs to the institutional domain
func ValidCampusEmail(email, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}
	return email[at+1:] == strings.ToLower(domain)
}

// Register creates a new account in pending status
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if !ValidCampusEmail(req.Email, s.emailDomain) {
		return nil, fmt.Errorf("%w: must be a %s address", apperrors.ErrForeignEmailDomain, s.emailDomain)
	}
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("invalid role")
	}

	exists, err := s.userRepo.EmailExists(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      strings.ToLower(req.Email),
		Name:       req.Name,
		Password:   hashed,
		Role:       req.Role,
		Status:     models.AccountPending,
		Department: req.Department,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and account status, then issues a token.
// Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.AccountPending:
		return nil, apperrors.ErrAccountPending
	case models.AccountRejected:
		return nil, apperrors.ErrAccountRejected
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}

// Me reads the current user fresh from the database
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
