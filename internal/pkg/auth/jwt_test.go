package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/aegisone/campus/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campus-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Email: "b23001@iitmandi.ac.in", Role: models.RoleStudent}

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleStudent)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Email: "x@iitmandi.ac.in", Role: models.RoleAdmin}

	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 1, Email: "x@iitmandi.ac.in", Role: models.RoleStudent}

	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret should be rejected")
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"abc.def.ghi", "abc.def.ghi", true},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ExtractBearerToken(tc.header)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ExtractBearerToken(%q) = %q, %v; want %q", tc.header, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ExtractBearerToken(%q): expected error", tc.header)
		}
	}
}

func TestValidateAndExtractClaims(t *testing.T) {
	svc := testService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); err == nil {
		t.Error("empty token should be rejected")
	}
}
