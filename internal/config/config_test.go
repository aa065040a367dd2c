package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portal")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port, "port defaults")
	assert.Equal(t, "postgres://localhost:5432/portal", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Second, cfg.AITimeout, "AI timeout defaults")
	assert.False(t, cfg.HasAICapability())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portal")
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "real-key")
	t.Setenv("CATALOG_PATH", "/etc/portal/internships.json")
	t.Setenv("AI_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/etc/portal/internships.json", cfg.CatalogPath)
	assert.Equal(t, 10*time.Second, cfg.AITimeout)
	assert.True(t, cfg.HasAICapability())
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portal")

	for _, bad := range []string{"abc", "0", "-5"} {
		t.Setenv("AI_TIMEOUT_SECONDS", bad)
		_, err := Load()
		assert.Error(t, err, "timeout %q should be rejected", bad)
	}
}

func TestHasAICapability_Placeholder(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"placeholder", "your_gemini_api_key_here", false},
		{"placeholder uppercase", "YOUR_GEMINI_API_KEY_HERE", false},
		{"real key", "AIzaSyExample", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{GeminiAPIKey: tt.key}
			assert.Equal(t, tt.want, cfg.HasAICapability())
		})
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
