package config

import (
	"testing"
)

func TestLoad_MissingDatabaseURLFails(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CookieSecure {
		t.Errorf("cookies should not default to Secure outside release mode")
	}
}

func TestLoad_SecureCookiesInRelease(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.CookieSecure {
		t.Errorf("release mode should default to Secure cookies")
	}
}

func TestLoad_CookieSecureOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CookieSecure {
		t.Errorf("COOKIE_SECURE=false should override the release default")
	}

	t.Setenv("COOKIE_SECURE", "not-a-bool")
	if _, err := Load(); err == nil {
		t.Errorf("expected error for malformed COOKIE_SECURE")
	}
}

func TestLoad_AdminSeedPair(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "AdminPassword123!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AdminEmail != "admin@example.com" || cfg.AdminPassword != "AdminPassword123!" {
		t.Errorf("seed pair not loaded: %q %q", cfg.AdminEmail, cfg.AdminPassword)
	}
}
