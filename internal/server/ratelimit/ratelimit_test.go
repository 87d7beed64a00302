package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsWithinBudget(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/render")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/render")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.False(t, info.ResetTime.IsZero())
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})

	allowed, _ := l.Allow("1.1.1.1", "/render")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/render")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/render")
	assert.True(t, allowed)
}

func TestLimiter_RuleOverridesDefault(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/export/", Limit: 1, Window: time.Minute},
		},
	})

	allowed, info := l.Allow("1.2.3.4", "/export/pdf")
	require.True(t, allowed)
	assert.Equal(t, 1, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/export/pdf")
	assert.False(t, allowed)

	// other paths still use the default budget
	allowed, info = l.Allow("1.2.3.4", "/render")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestLimiter_UnlimitedRule(t *testing.T) {
	l := NewLimiter(DefaultConfig())

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health")
		assert.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/render")
		assert.True(t, allowed)
	}
}
