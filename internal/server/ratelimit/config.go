package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLimit           = 300
	defaultWindow          = time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// Rule throttles one endpoint. A Path ending in "/" matches by prefix, so
// "/internships/" covers "/internships/{id}".
type Rule struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // bucket capacity, defaults to Limit when 0
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Rules           []Rule
}

// LoadConfig reads the limiter configuration from the environment.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", defaultLimit),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", defaultWindow),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", defaultCleanupInterval),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-endpoint budgets. Endpoints that can reach
// Gemini are the strictest; profile writes and test submissions sit in a
// middle tier; catalog reads fall through to the default limit.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/chatbot", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/recommendations", Method: "GET", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/test/questions", Method: "GET", Limit: 10, Window: time.Minute, Burst: 3},

		{Path: "/test/submit", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/profile", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// parseIPList parses a comma-separated list of client addresses.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
