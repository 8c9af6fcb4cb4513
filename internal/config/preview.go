// Package config provides environment-driven configuration for the precision-site service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// PreviewConfig holds configuration for draft-preview token generation and
// validation.
type PreviewConfig struct {
	Secret            string
	ExpirationMinutes int
}

// NewPreviewConfig creates a preview configuration from environment variables.
// It reads PREVIEW_SECRET_TOKEN (required) and PREVIEW_TOKEN_MINUTES
// (default: 60).
func NewPreviewConfig() (*PreviewConfig, error) {
	secret := os.Getenv("PREVIEW_SECRET_TOKEN")
	if secret == "" {
		return nil, fmt.Errorf("PREVIEW_SECRET_TOKEN is required but not set")
	}

	expirationStr := os.Getenv("PREVIEW_TOKEN_MINUTES")
	if expirationStr == "" {
		expirationStr = "60" // default
	}

	expirationMinutes, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PREVIEW_TOKEN_MINUTES: %v", err)
	}

	cfg := &PreviewConfig{
		Secret:            secret,
		ExpirationMinutes: expirationMinutes,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *PreviewConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("PREVIEW_SECRET_TOKEN cannot be empty")
	}
	if c.ExpirationMinutes < 1 {
		return fmt.Errorf("PREVIEW_TOKEN_MINUTES must be at least 1 minute, got: %d", c.ExpirationMinutes)
	}
	return nil
}
