// Package config provides environment-driven configuration for the precision-site service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// SMTPConfig holds the email transport configuration. Host, User and Pass are
// the three credentials whose joint presence determines whether the contact
// pipeline treats email as configured.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// Configured reports whether all three required transport credentials are set.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// MissingCredentials lists the unset SMTP variables, for the integrations
// health report.
func (c SMTPConfig) MissingCredentials() []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	return missing
}

// Config is the full service configuration loaded from the environment.
type Config struct {
	DatabaseURL   string
	SMTP          SMTPConfig
	ContactPhone  string // fallback number shown when notification cannot be confirmed
	PreviewSecret string
}

// defaultContactPhone is the number quoted in degraded contact responses.
const defaultContactPhone = "(503) 231-9093"

// Load reads configuration from environment variables. DATABASE_URL is
// required; SMTP credentials are optional by design, since the contact
// pipeline degrades rather than fails when they are absent.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	smtpPort, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL: databaseURL,
		SMTP: SMTPConfig{
			Host: os.Getenv("SMTP_HOST"),
			Port: smtpPort,
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: os.Getenv("SMTP_FROM"),
			To:   os.Getenv("CONTACT_NOTIFY_TO"),
		},
		ContactPhone:  getEnvString("CONTACT_FALLBACK_PHONE", defaultContactPhone),
		PreviewSecret: os.Getenv("PREVIEW_SECRET_TOKEN"),
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.From
	}

	return cfg, nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return intValue, nil
}
