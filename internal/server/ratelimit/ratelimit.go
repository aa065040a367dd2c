// Package ratelimit throttles API clients with per-endpoint token buckets.
// The Gemini-backed endpoints carry the tightest budgets since every request
// there can turn into a model call.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// bucketIdleTTL is how long an untouched bucket survives before a sweep
// reclaims it.
const bucketIdleTTL = time.Hour

// bucket is a token bucket. Tokens refill continuously at refill per second
// up to capacity.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	refill   float64
	tokens   float64
	last     time.Time
}

// take consumes a token when one is available and reports the bucket state
// after the attempt.
func (b *bucket) take(now time.Time) (ok bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.refill)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	resetAt = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refill
		resetAt = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return ok, remaining, resetAt
}

// Info describes the outcome of a rate limit check.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client+endpoint combination.
type Limiter struct {
	cfg *Config

	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	now func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
}

// NewLimiter builds a Limiter. A nil config gets permissive defaults.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{
			Enabled:         true,
			DefaultLimit:    defaultLimit,
			DefaultWindow:   defaultWindow,
			CleanupInterval: defaultCleanupInterval,
		}
	}

	l := &Limiter{
		cfg:        cfg,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		now:        time.Now,
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.ticker = time.NewTicker(cfg.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow checks whether the client may hit the endpoint now, consuming a
// token when it may.
func (l *Limiter) Allow(clientID, path, method string) Info {
	if !l.cfg.Enabled || l.cfg.Whitelist[clientID] {
		return Info{Allowed: true}
	}
	if l.cfg.Blacklist[clientID] {
		return Info{Allowed: false}
	}

	rule := match(path, method, l.cfg.Rules)
	if rule == nil {
		rule = &Rule{Limit: l.cfg.DefaultLimit, Window: l.cfg.DefaultWindow}
	}
	if rule.Limit <= 0 {
		// Unlimited endpoint.
		return Info{Allowed: true}
	}

	now := l.now()
	key := clientID + ":" + method + ":" + path
	b := l.bucket(key, rule, now)

	ok, remaining, resetAt := b.take(now)
	info := Info{
		Allowed:   ok,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !ok {
		if wait := resetAt.Sub(now); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return info
}

// bucket returns the bucket for the key, creating it from the rule on
// first use, and records the access for the idle sweep.
func (l *Limiter) bucket(key string, rule *Rule, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = now
	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := &bucket{
		capacity: float64(capacity),
		refill:   float64(rule.Limit) / rule.Window.Seconds(),
		tokens:   float64(capacity),
		last:     now,
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.sweep(l.now().Add(-bucketIdleTTL))
		case <-l.stop:
			return
		}
	}
}

// sweep drops buckets that have been idle since before the cutoff.
func (l *Limiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, at := range l.lastAccess {
		if at.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop ends the idle sweep goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
