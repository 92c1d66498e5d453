package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{
		"PORT",
		"FIREBASE_PROJECT_ID",
		"GOOGLE_APPLICATION_CREDENTIALS",
		"REGISTRATION_VARIANT",
		"REGISTRATION_TIMEZONE",
	} {
		v, ok := kv[k]
		t.Setenv(k, v)
		if !ok {
			// godotenv only fills variables that are absent, not empty.
			_ = os.Unsetenv(k)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{"FIREBASE_PROJECT_ID": "demo-project"})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Variant != "export" {
		t.Fatalf("expected export variant, got %s", cfg.Variant)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", cfg.Location)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":                  "9090",
		"FIREBASE_PROJECT_ID":   "demo-project",
		"REGISTRATION_VARIANT":  "Basic",
		"REGISTRATION_TIMEZONE": "America/Mexico_City",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Variant != "Basic" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Location.String() != "America/Mexico_City" {
		t.Fatalf("unexpected location: %s", cfg.Location)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing project", map[string]string{}, "FIREBASE_PROJECT_ID"},
		{"bad port", map[string]string{"FIREBASE_PROJECT_ID": "p", "PORT": "http"}, "PORT"},
		{"port out of range", map[string]string{"FIREBASE_PROJECT_ID": "p", "PORT": "70000"}, "PORT"},
		{"bad timezone", map[string]string{"FIREBASE_PROJECT_ID": "p", "REGISTRATION_TIMEZONE": "Mars/Olympus"}, "REGISTRATION_TIMEZONE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadReadsDotenvWithoutOverriding(t *testing.T) {
	setEnv(t, map[string]string{"PORT": "7070"})
	path := filepath.Join(t.TempDir(), ".env")
	content := "FIREBASE_PROJECT_ID=from-file\nPORT=6060\nREGISTRATION_VARIANT=basic\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectID != "from-file" {
		t.Fatalf("expected project from file, got %q", cfg.ProjectID)
	}
	if cfg.Port != "7070" {
		t.Fatalf("environment should win over .env, got port %s", cfg.Port)
	}
	if cfg.Variant != "basic" {
		t.Fatalf("expected basic variant from file, got %s", cfg.Variant)
	}
}

func TestLoadSkipsMissingDotenv(t *testing.T) {
	setEnv(t, map[string]string{"FIREBASE_PROJECT_ID": "demo-project"})
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env should be skipped, got %v", err)
	}
}
