package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_API_KEY", "key")
	t.Setenv("MAILGUN_SENDER", "noreply@example.com")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")
}

func TestValidate_OK(t *testing.T) {
	setRequiredEnv(t)
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")
	cfg := Load()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("error does not name JWT_SECRET: %v", err)
	}
}

func TestValidate_MissingMailTransport(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAILGUN_API_KEY", "")
	cfg := Load()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing mail transport config")
	}
	if !strings.Contains(err.Error(), "MAILGUN_API_KEY") {
		t.Fatalf("error does not name MAILGUN_API_KEY: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	cfg := Load()
	if cfg.CodeTTL != 10*time.Minute {
		t.Fatalf("CodeTTL default = %v, want 10m", cfg.CodeTTL)
	}
	if cfg.JWTTTL != 168*time.Hour {
		t.Fatalf("JWTTTL default = %v, want 168h", cfg.JWTTTL)
	}
	if cfg.CheckQuota != 200 {
		t.Fatalf("CheckQuota default = %d, want 200", cfg.CheckQuota)
	}
	if cfg.MaxCodeAttempts != 5 {
		t.Fatalf("MaxCodeAttempts default = %d, want 5", cfg.MaxCodeAttempts)
	}
}

func TestPostgresDSN(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "checkpass")
	cfg := Load()
	want := "postgres://app:pw@db:5433/checkpass?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("PostgresDSN = %q, want %q", got, want)
	}
}
