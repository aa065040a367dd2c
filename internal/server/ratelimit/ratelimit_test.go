package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLimiter builds a limiter on a controllable clock. Advance the returned
// time pointer to move the clock.
func testLimiter(t *testing.T, cfg *Config) (*Limiter, *time.Time) {
	t.Helper()
	l := NewLimiter(cfg)
	t.Cleanup(l.Stop)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestAllow_BurstThenDeny(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 10; i++ {
		info := l.Allow("203.0.113.7", "/internships", "GET")
		require.True(t, info.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	info := l.Allow("203.0.113.7", "/internships", "GET")
	require.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_Refill(t *testing.T) {
	l, now := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 10; i++ {
		require.True(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)
	}
	require.False(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)

	// 10 per minute refills one token every 6 seconds.
	*now = now.Add(7 * time.Second)
	assert.True(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)
	assert.False(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)
}

func TestAllow_ChatbotRule(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	})

	// The chatbot rule allows a burst of 5 before throttling.
	for i := 0; i < 5; i++ {
		info := l.Allow("203.0.113.7", "/chatbot", "POST")
		require.True(t, info.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 20, info.Limit)
	}
	info := l.Allow("203.0.113.7", "/chatbot", "POST")
	require.False(t, info.Allowed)

	// Other endpoints fall through to the default limit.
	info = l.Allow("203.0.113.7", "/internships", "GET")
	require.True(t, info.Allowed)
	assert.Equal(t, 1000, info.Limit)

	// A different client gets its own bucket.
	assert.True(t, l.Allow("203.0.113.8", "/chatbot", "POST").Allowed)
}

func TestAllow_Whitelist(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"203.0.113.7": true},
	})

	for i := 0; i < 50; i++ {
		info := l.Allow("203.0.113.7", "/chatbot", "POST")
		require.True(t, info.Allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestAllow_Blacklist(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"198.51.100.1": true},
	})

	assert.False(t, l.Allow("198.51.100.1", "/internships", "GET").Allowed)
	assert.True(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l, _ := testLimiter(t, &Config{Enabled: false})

	for i := 0; i < 50; i++ {
		info := l.Allow("203.0.113.7", "/chatbot", "POST")
		require.True(t, info.Allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestAllow_Concurrent(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("203.0.113.7", "/internships", "GET").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowed)
}

func TestSweep(t *testing.T) {
	l, now := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})

	require.True(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)
	require.False(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)

	// An idle sweep resets the client to a fresh bucket.
	l.sweep(now.Add(time.Second))
	assert.True(t, l.Allow("203.0.113.7", "/internships", "GET").Allowed)
}

func TestMatch(t *testing.T) {
	rules := []Rule{
		{Path: "/chatbot", Method: "POST", Limit: 20, Window: time.Minute},
		{Path: "/internships/", Method: "GET", Limit: 50, Window: time.Minute},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{name: "health is unlimited", path: "/health", method: "GET", wantLimit: 0},
		{name: "exact match", path: "/chatbot", method: "POST", wantLimit: 20},
		{name: "prefix match", path: "/internships/pmis-2026-001", method: "GET", wantLimit: 50},
		{name: "method mismatch", path: "/chatbot", method: "GET", wantNil: true},
		{name: "no rule", path: "/profile", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := match(tt.path, tt.method, rules)
			if tt.wantNil {
				assert.Nil(t, rule)
				return
			}
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantLimit, rule.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()
		assert.True(t, cfg.Enabled)
		assert.Equal(t, defaultLimit, cfg.DefaultLimit)
		assert.Equal(t, defaultWindow, cfg.DefaultWindow)
		assert.NotEmpty(t, cfg.Rules)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "false")
		cfg := LoadConfig()
		assert.False(t, cfg.Enabled)
	})

	t.Run("overrides and lists", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
		t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
		t.Setenv("RATE_LIMIT_WHITELIST", "203.0.113.7, 203.0.113.8")
		cfg := LoadConfig()
		assert.Equal(t, 42, cfg.DefaultLimit)
		assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
		assert.True(t, cfg.Whitelist["203.0.113.7"])
		assert.True(t, cfg.Whitelist["203.0.113.8"])
	})
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	info := l.Allow("203.0.113.7", "/internships", "GET")
	require.True(t, info.Allowed)
	assert.Equal(t, defaultLimit, info.Limit)
}

func TestSweep_KeepsRecentBuckets(t *testing.T) {
	l, now := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	})

	for i := 0; i < 3; i++ {
		l.Allow(fmt.Sprintf("203.0.113.%d", i+1), "/internships", "GET")
	}
	l.sweep(now.Add(-time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 3)
}
