package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenExpiration != "24h" {
		t.Errorf("AccessTokenExpiration = %q, want 24h", cfg.JWT.AccessTokenExpiration)
	}
	if cfg.Campus.EmailDomain != "iitmandi.ac.in" {
		t.Errorf("EmailDomain = %q, want iitmandi.ac.in", cfg.Campus.EmailDomain)
	}
	if cfg.Campus.DefaultImportPassword == "" {
		t.Error("DefaultImportPassword default should be set")
	}
	if cfg.AccessTokenExpiry() != 24*time.Hour {
		t.Errorf("AccessTokenExpiry = %v, want 24h", cfg.AccessTokenExpiry())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
jwt:
  secret: file-secret
  access_token_expiration: 12h
campus:
  email_domain: example.edu
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("JWT.Secret = %q, want file-secret", cfg.JWT.Secret)
	}
	if cfg.Campus.EmailDomain != "example.edu" {
		t.Errorf("EmailDomain = %q, want example.edu", cfg.Campus.EmailDomain)
	}
	if cfg.AccessTokenExpiry() != 12*time.Hour {
		t.Errorf("AccessTokenExpiry = %v, want 12h", cfg.AccessTokenExpiry())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: file-secret\n")

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, want env-secret", cfg.JWT.Secret)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("MaxOpenConns = %d, want 50", cfg.Database.MaxOpenConns)
	}
}

func TestMissingSecretRejected(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"8080\"\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("config without JWT secret should be rejected")
	}
}

func TestInvalidExpirationRejected(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: s\n  access_token_expiration: nonsense\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("invalid duration should be rejected")
	}
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "campus"

	want := "postgres://u:p@db:5433/campus?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString = %q, want %q", got, want)
	}
}

func TestOverlayEnvTypesAndNesting(t *testing.T) {
	type inner struct {
		Port    string `env:"OVERLAY_TEST_PORT"`
		Retries int    `env:"OVERLAY_TEST_RETRIES"`
	}
	type outer struct {
		Inner   inner
		Debug   bool          `env:"OVERLAY_TEST_DEBUG"`
		Timeout time.Duration `env:"OVERLAY_TEST_TIMEOUT"`
		Kept    string        `env:"OVERLAY_TEST_UNSET"`
	}

	t.Setenv("OVERLAY_TEST_PORT", "9999")
	t.Setenv("OVERLAY_TEST_RETRIES", "3")
	t.Setenv("OVERLAY_TEST_DEBUG", "true")
	t.Setenv("OVERLAY_TEST_TIMEOUT", "90s")

	cfg := outer{Kept: "from-yaml"}
	if err := overlayEnv(&cfg); err != nil {
		t.Fatalf("overlayEnv: %v", err)
	}
	if cfg.Inner.Port != "9999" {
		t.Errorf("nested string = %q, want 9999", cfg.Inner.Port)
	}
	if cfg.Inner.Retries != 3 {
		t.Errorf("nested int = %d, want 3", cfg.Inner.Retries)
	}
	if !cfg.Debug {
		t.Error("bool field should be true")
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("duration = %v, want 90s", cfg.Timeout)
	}
	if cfg.Kept != "from-yaml" {
		t.Errorf("unset env var should leave field alone, got %q", cfg.Kept)
	}
}

func TestOverlayEnvRejectsBadValues(t *testing.T) {
	type cfg struct {
		Retries int `env:"OVERLAY_TEST_BAD_INT"`
	}
	t.Setenv("OVERLAY_TEST_BAD_INT", "not-a-number")

	var c cfg
	if err := overlayEnv(&c); err == nil {
		t.Fatal("expected an error for a non-numeric int value")
	}
}
