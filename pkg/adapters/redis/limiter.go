// Package redis provides Redis-backed adapters.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

// Limiter implements ports.RateLimiter with fixed windows shared by every
// gateway instance that points at the same Redis.
type Limiter struct {
	client *backend.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

var _ ports.RateLimiter = (*Limiter)(nil)

// Option configures the Limiter.
type Option func(*Limiter)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(l *Limiter) {
		l.prefix = prefix
	}
}

// WithWindow sets the window length (default one minute).
func WithWindow(window time.Duration) Option {
	return func(l *Limiter) {
		if window > 0 {
			l.window = window
		}
	}
}

// WithClock overrides the time source used to pick the current window.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter creates a limiter from a connection URL such as redis://localhost:6379/0.
func NewLimiter(url string, limit int, opts ...Option) (*Limiter, error) {
	redisOpts, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewLimiterFromClient(backend.NewClient(redisOpts), limit, opts...), nil
}

// NewLimiterFromClient creates a limiter from an existing client.
func NewLimiterFromClient(client *backend.Client, limit int, opts ...Option) *Limiter {
	l := &Limiter{
		client: client,
		prefix: "wolfpad:",
		limit:  limit,
		window: time.Minute,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Limiter) key(key string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%sratelimit:%s:%d", l.prefix, key, slot)
}

// Allow counts one request for key in the current window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	var incr *backend.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis error counting request: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}

// Ping checks connectivity.
func (l *Limiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (l *Limiter) Close() error {
	return l.client.Close()
}
