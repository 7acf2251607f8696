// Package config provides configuration loading and validation for the
// Linkup server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from environment
// variables. A .env file in the working directory is read first when
// present; real environment variables take precedence.
type Config struct {
	Port        int
	DatabaseURL string
	JWT         *JWTConfig
	Password    *PasswordConfig
}

// Load builds the full server configuration from the environment.
// It reads PORT (default: 8080) and DATABASE_URL (required), then the
// JWT and password sub-configurations.
func Load() (*Config, error) {
	// Ignore a missing .env file; the environment may be set directly.
	_ = godotenv.Load()

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	jwtConfig, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}

	passwordConfig, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:        port,
		DatabaseURL: databaseURL,
		JWT:         jwtConfig,
		Password:    passwordConfig,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
