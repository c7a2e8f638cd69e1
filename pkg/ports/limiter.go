package ports

import "context"

// RateLimiter bounds how many requests a caller can issue per window.
type RateLimiter interface {
	// Allow records one request for key and reports whether it fits the budget.
	Allow(ctx context.Context, key string) (bool, error)
}
