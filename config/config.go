// Package config provides configuration management for the todo service.
// It handles loading and validation of configuration values from environment
// variables, with support for default values and collective error reporting.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultSecretKey is the development signing key used when TODO_SECRET_KEY
// is not set. It is intentionally well-known and must be overridden in any
// real deployment.
const DefaultSecretKey = "dev-secret-key"

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	SecretKey string        // Symmetric key for signing tokens
	TokenTTL  time.Duration // Lifetime of issued access tokens
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Auth   *AuthConfig
	Server *ServerConfig
}

// getOptionalEnv returns the value of an environment variable, or the default
// when it is unset.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvDuration parses an environment variable as a time.Duration
// ("15m", "24h", ...). Uses defaultValue if unset; appends an error if set
// but unparseable.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// LoadConfig creates and returns an AppConfig by reading environment
// variables. It collects all errors encountered during loading and returns a
// single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	secretKey := getOptionalEnv("TODO_SECRET_KEY", DefaultSecretKey)
	tokenTTL := getOptionalEnvDuration("TODO_TOKEN_TTL", 24*time.Hour, &errors)
	if tokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("TODO_TOKEN_TTL must be positive, got %s", tokenTTL))
	}

	serverPort := getOptionalEnv("PORT", "8080")

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Auth: &AuthConfig{
			SecretKey: secretKey,
			TokenTTL:  tokenTTL,
		},
		Server: &ServerConfig{
			Port: serverPort,
		},
	}, nil
}
