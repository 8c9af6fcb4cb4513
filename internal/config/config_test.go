package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS",
		"SMTP_FROM", "CONTACT_NOTIFY_TO", "CONTACT_FALLBACK_PHONE",
		"PREVIEW_SECRET_TOKEN", "PREVIEW_TOKEN_MINUTES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/precision_site")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
	assert.Equal(t, "(503) 231-9093", cfg.ContactPhone)
	assert.Empty(t, cfg.PreviewSecret)
}

func TestLoad_SMTPAddressFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/precision_site")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "mailer@iismfg.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "mailer@iismfg.com", cfg.SMTP.From, "From falls back to the SMTP user")
	assert.Equal(t, "mailer@iismfg.com", cfg.SMTP.To, "To falls back to From")
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/precision_site")
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestSMTPConfig_Configured(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SMTPConfig
		want    bool
		missing []string
	}{
		{
			name:    "all credentials",
			cfg:     SMTPConfig{Host: "h", User: "u", Pass: "p"},
			want:    true,
			missing: nil,
		},
		{
			name:    "missing pass",
			cfg:     SMTPConfig{Host: "h", User: "u"},
			want:    false,
			missing: []string{"SMTP_PASS"},
		},
		{
			name:    "nothing set",
			cfg:     SMTPConfig{},
			want:    false,
			missing: []string{"SMTP_HOST", "SMTP_USER", "SMTP_PASS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Configured())
			assert.Equal(t, tt.missing, tt.cfg.MissingCredentials())
		})
	}
}

func TestNewPreviewConfig(t *testing.T) {
	clearEnv(t)

	_, err := NewPreviewConfig()
	require.Error(t, err, "secret is required")

	t.Setenv("PREVIEW_SECRET_TOKEN", "editor-secret")
	cfg, err := NewPreviewConfig()
	require.NoError(t, err)
	assert.Equal(t, "editor-secret", cfg.Secret)
	assert.Equal(t, 60, cfg.ExpirationMinutes)

	t.Setenv("PREVIEW_TOKEN_MINUTES", "15")
	cfg, err = NewPreviewConfig()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.ExpirationMinutes)

	t.Setenv("PREVIEW_TOKEN_MINUTES", "zero")
	_, err = NewPreviewConfig()
	assert.Error(t, err)
}
