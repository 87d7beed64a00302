// Package ratelimit provides token bucket rate limiting for the poster API.
// Export endpoints get tighter limits since each request holds a headless
// browser for its duration.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Rule sets the budget for one path prefix
type Rule struct {
	PathPrefix string
	Limit      int // bucket capacity (burst)
	Window     time.Duration
}

// Config holds rate limiting configuration
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
}

// DefaultConfig returns the limits used when none are configured: a generous
// global budget with a small one for the rasterization endpoints.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/export/", Limit: 10, Window: time.Minute},
			{PathPrefix: "/health", Limit: 0, Window: 0}, // unlimited
		},
	}
}

// Info reports the limit state for one decision
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// bucket is a token bucket refilled continuously at limit/window
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(limit int, window time.Duration) *bucket {
	return &bucket{
		capacity:   float64(limit),
		refillRate: float64(limit) / window.Seconds(),
		tokens:     float64(limit),
		lastRefill: time.Now(),
	}
}

// take refills, then consumes one token if available
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		reset = now
	}
	return allowed, remaining, reset
}

// Limiter manages per-client buckets
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex
}

// NewLimiter creates a limiter; a nil config uses DefaultConfig
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
}

// Allow decides whether a request from clientID to path may proceed
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit, window := l.match(path)
	if limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + path
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(limit, window)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	allowed, remaining, reset := b.take()
	return allowed, Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: reset,
	}
}

// match finds the rule for a path, falling back to the defaults. Longest
// matching prefix wins.
func (l *Limiter) match(path string) (int, time.Duration) {
	bestLen := -1
	limit, window := l.config.DefaultLimit, l.config.DefaultWindow
	for _, r := range l.config.Rules {
		if strings.HasPrefix(path, r.PathPrefix) && len(r.PathPrefix) > bestLen {
			bestLen = len(r.PathPrefix)
			limit, window = r.Limit, r.Window
		}
	}
	return limit, window
}
