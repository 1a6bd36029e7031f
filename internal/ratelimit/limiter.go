package ratelimit

import (
	"sync"
	"time"
)

type record struct {
	count       int
	windowStart time.Time
}

// Limiter is a fixed-window counter keyed by caller identity. Each endpoint
// owns its own instance, so contact and chat budgets never interact.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	entries map[string]*record
	now     func() time.Time
}

func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		window:  window,
		max:     max,
		entries: make(map[string]*record),
		now:     time.Now,
	}
}

// Allow reports whether id may perform one more request in the current
// window, counting it if so. Expired entries are swept opportunistically on
// each call; there is no background goroutine to manage.
func (l *Limiter) Allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, rec := range l.entries {
		if now.Sub(rec.windowStart) >= l.window {
			delete(l.entries, key)
		}
	}

	rec, ok := l.entries[id]
	if !ok {
		l.entries[id] = &record{count: 1, windowStart: now}
		return true
	}
	if rec.count >= l.max {
		return false
	}
	rec.count++
	return true
}
