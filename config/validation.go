package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that every setting the server cannot run without is
// present. Storage credentials are intentionally not listed here: the
// upload endpoint degrades to 500 without them, the rest of the API is
// unaffected.
func Validate(cfg *Config) error {
	var errors []string

	if cfg.DBUser == "" {
		errors = append(errors, "DB_USER is not set")
	}
	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD is not set")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) > 0 && len(cfg.JWTSecret) < 16 {
		errors = append(errors, "JWT_SECRET must be at least 16 characters")
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}

// DSN renders the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
