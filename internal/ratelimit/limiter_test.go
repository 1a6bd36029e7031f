package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsUpToMax(t *testing.T) {
	limiter := New(time.Minute, 3)
	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("a@example.com"), "call %d", i)
	}
	require.False(t, limiter.Allow("a@example.com"))
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	limiter := New(time.Minute, 1)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Allow("1.2.3.4"))
	require.False(t, limiter.Allow("1.2.3.4"))

	now = now.Add(time.Minute)
	require.True(t, limiter.Allow("1.2.3.4"))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	limiter := New(time.Minute, 1)
	require.True(t, limiter.Allow("first"))
	require.True(t, limiter.Allow("second"))
	require.False(t, limiter.Allow("first"))
}

func TestLimiterSweepsExpiredEntries(t *testing.T) {
	now := time.Unix(1000, 0)
	limiter := New(time.Minute, 1)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Allow("stale"))
	now = now.Add(2 * time.Minute)
	require.True(t, limiter.Allow("fresh"))
	require.NotContains(t, limiter.entries, "stale")
}
