// Package config provides environment-based configuration for the portal
// server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// geminiKeyPlaceholder is the value .env templates ship with; a key equal
// to it counts as absent.
const geminiKeyPlaceholder = "your_gemini_api_key_here"

// Config holds the portal server configuration.
type Config struct {
	Port         string
	DatabaseURL  string
	GeminiAPIKey string
	CatalogPath  string
	AITimeout    time.Duration
}

// Load reads configuration from environment variables. DATABASE_URL is
// required; everything else has a default or is optional.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		CatalogPath:  os.Getenv("CATALOG_PATH"),
		AITimeout:    30 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	if timeoutStr := os.Getenv("AI_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil || seconds < 1 {
			return nil, fmt.Errorf("invalid AI_TIMEOUT_SECONDS: %q", timeoutStr)
		}
		cfg.AITimeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

// HasAICapability reports whether a usable Gemini key is configured.
// Placeholder values left over from .env templates do not count.
func (c *Config) HasAICapability() bool {
	key := strings.TrimSpace(c.GeminiAPIKey)
	if key == "" {
		return false
	}
	return !strings.EqualFold(key, geminiKeyPlaceholder)
}
