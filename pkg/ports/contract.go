package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRateLimiterContract verifies that a RateLimiter built by newLimiter with the
// given per-window limit adheres to the interface contract.
func RunRateLimiterContract(t *testing.T, newLimiter func(limit int) RateLimiter) {
	t.Helper()
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Allows up to the limit", func(t *testing.T) {
		limiter := newLimiter(3)
		for i := 0; i < 3; i++ {
			ok, err := limiter.Allow(ctx, key+"-a")
			require.NoError(t, err)
			assert.True(t, ok, "request %d should be allowed", i+1)
		}

		ok, err := limiter.Allow(ctx, key+"-a")
		require.NoError(t, err)
		assert.False(t, ok, "request over the limit should be rejected")
	})

	t.Run("Keys are independent", func(t *testing.T) {
		limiter := newLimiter(1)

		ok, err := limiter.Allow(ctx, key+"-b")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = limiter.Allow(ctx, key+"-c")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = limiter.Allow(ctx, key+"-b")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Concurrent callers share the budget", func(t *testing.T) {
		limiter := newLimiter(5)
		type outcome struct {
			ok  bool
			err error
		}
		results := make(chan outcome, 20)
		for i := 0; i < 20; i++ {
			go func() {
				ok, err := limiter.Allow(ctx, key+"-d")
				results <- outcome{ok: ok, err: err}
			}()
		}

		allowed := 0
		for i := 0; i < 20; i++ {
			res := <-results
			require.NoError(t, res.err)
			if res.ok {
				allowed++
			}
		}
		assert.Equal(t, 5, allowed)
	})
}
