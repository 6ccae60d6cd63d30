// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mail     MailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds SurrealDB connection settings.
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// MailConfig holds notification provider settings. Endpoint and APIKey both
// empty is a valid state: the mailer then simulates every delivery.
type MailConfig struct {
	Endpoint     string
	APIKey       string
	From         string
	CopyOperator bool
	Timeout      time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			Env:          getEnv("SERVER_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "varal"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Mail: MailConfig{
			Endpoint:     getEnv("NOTIFY_EMAIL_API", ""),
			APIKey:       getEnv("NOTIFY_EMAIL_KEY", ""),
			From:         getEnv("MAIL_FROM", ""),
			CopyOperator: getBoolEnv("MAIL_COPY_OPERATOR", true),
			Timeout:      getDurationEnv("MAIL_TIMEOUT", 5*time.Second),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Validate checks that all required configuration values are present and
// valid. It returns an error describing all validation failures, or nil.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}

	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}

	// The mail provider is optional but must be configured whole.
	if (c.Mail.Endpoint == "") != (c.Mail.APIKey == "") {
		errs = append(errs, errors.New("NOTIFY_EMAIL_API and NOTIFY_EMAIL_KEY must be set together"))
	}
	if c.Mail.Timeout <= 0 {
		errs = append(errs, errors.New("MAIL_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
