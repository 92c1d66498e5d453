// Package config reads service settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings the server needs at startup.
type Config struct {
	Port                         string
	ProjectID                    string
	GoogleApplicationCredentials string
	// Variant is the raw REGISTRATION_VARIANT; registration.ParseVariant validates it.
	Variant string
	Location                     *time.Location
}

// FromEnv loads .env from the working directory when present and builds a Config
// from the process environment. Variables already set in the environment win over
// the file.
func FromEnv() (Config, error) {
	return Load(".env")
}

// Load is FromEnv with explicit dotenv files. Missing files are skipped.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:                         getenv("PORT", "8080"),
		ProjectID:                    strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
		GoogleApplicationCredentials: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
		Variant:                      getenv("REGISTRATION_VARIANT", "export"),
	}

	if cfg.ProjectID == "" {
		return Config{}, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	tz := getenv("REGISTRATION_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid REGISTRATION_TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
