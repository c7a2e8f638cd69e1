// Package memory provides in-process adapters.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wolfpad/wolfpad/pkg/ports"
)

// sweepThreshold is the number of tracked keys above which stale windows are dropped.
const sweepThreshold = 1024

type window struct {
	slot  int64
	count int
}

// Limiter implements ports.RateLimiter in memory with fixed windows.
// Safe for concurrent use. Budgets are per process.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	windows map[string]*window
}

var _ ports.RateLimiter = (*Limiter)(nil)

// NewLimiter creates a limiter allowing limit requests per window.
func NewLimiter(limit int, every time.Duration) *Limiter {
	if every <= 0 {
		every = time.Minute
	}
	return &Limiter{
		limit:   limit,
		window:  every,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// WithClock overrides the time source and returns the limiter.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// Allow counts one request for key in the current window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot := l.now().UnixNano() / int64(l.window)

	w, ok := l.windows[key]
	if !ok || w.slot != slot {
		if len(l.windows) >= sweepThreshold {
			l.sweep(slot)
		}
		w = &window{slot: slot}
		l.windows[key] = w
	}

	w.count++
	return w.count <= l.limit, nil
}

func (l *Limiter) sweep(current int64) {
	for k, w := range l.windows {
		if w.slot != current {
			delete(l.windows, k)
		}
	}
}
