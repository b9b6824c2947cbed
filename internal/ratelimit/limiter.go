package ratelimit

import (
	"context"
	"sync"
	"time"
)

// entry is a per-key fixed-window counter
type entry struct {
	count   int
	resetAt time.Time
}

// Limiter is a process-local fixed-window request counter.
//
// This is deliberately a fixed-window policy, not a sliding log: a burst
// of up to 2x the limit is possible across a window boundary. Consumers
// rely on that exact boundary behavior; do not swap in a smoother
// algorithm.
//
// The limiter is constructed once per process and injected where needed;
// the map is guarded by a mutex because concurrent requests from the same
// key must not corrupt the counter.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	window time.Duration
	max    int
	now    func() time.Time
}

func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// NewLimiterWithClock builds a limiter with a controlled clock, for tests
func NewLimiterWithClock(window time.Duration, max int, now func() time.Time) *Limiter {
	l := NewLimiter(window, max)
	l.now = now
	return l
}

// Allow records a request for key and reports whether it is within quota.
// A fresh or elapsed window resets to count 1 and allows. An over-quota
// request is rejected without resetting the window, so a rejected client
// gains nothing by hammering.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) || now.Equal(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	e.count++
	return e.count <= l.max
}

// Sweep drops expired entries so the map does not grow without bound.
// Active keys are never touched.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
		}
	}
}

// StartSweeping runs Sweep on the given interval until the context is done
func (l *Limiter) StartSweeping(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}

// Len reports the number of tracked keys, used by tests and sweeping checks
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
