package wolfpad

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfpad/wolfpad/internal/config"
	"github.com/wolfpad/wolfpad/pkg/adapters/memory"
	"github.com/wolfpad/wolfpad/pkg/adapters/redis"
	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

type staticCompleter struct {
	text string
	err  error
	last ports.CompletionRequest
}

func (s *staticCompleter) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	s.last = req
	return s.text, s.err
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.AI.APIKey = "test-key"
	return cfg
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), config.Default(), WithCompleter(&staticCompleter{}))
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestNew_DefaultsWithoutOptionalInfrastructure(t *testing.T) {
	gw, err := New(context.Background(), testConfig(), WithCompleter(&staticCompleter{}))
	require.NoError(t, err)
	defer gw.Close()

	assert.Nil(t, gw.Limiter())
	assert.Nil(t, gw.Platform())
	assert.NotNil(t, gw.Metrics())
	assert.NotNil(t, gw.Dispatcher())
}

func TestNew_BuildsGeminiCompleter(t *testing.T) {
	gw, err := New(context.Background(), testConfig())
	require.NoError(t, err)
	assert.NotNil(t, gw.completer)
}

func TestDispatchNamed_UsesConfiguredModelAndRecordsMetrics(t *testing.T) {
	completer := &staticCompleter{text: "Keep it short."}
	cfg := testConfig()
	cfg.AI.Model = "gemini-2.5-pro"

	var ended []domain.ActionName
	reg := prometheus.NewRegistry()
	gw, err := New(context.Background(), cfg,
		WithCompleter(completer),
		WithRegistry(reg),
		WithLifecycleHooks(domain.LifecycleHooks{
			OnActionEnd: func(_ context.Context, e *domain.ActionEvent) { ended = append(ended, e.Action) },
		}),
	)
	require.NoError(t, err)

	res, err := gw.DispatchNamed(context.Background(), "generateContent", map[string]any{"prompt": "Say hi"})
	require.NoError(t, err)

	assert.Equal(t, "Keep it short.", res)
	assert.Equal(t, "gemini-2.5-pro", completer.last.Model)
	assert.Equal(t, []domain.ActionName{domain.ActionGenerateContent}, ended)
	count, err := testutil.GatherAndCount(reg, "wolfpad_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchNamed_UnknownActionSkipsCompleter(t *testing.T) {
	completer := &staticCompleter{err: errors.New("must not be called")}
	gw, err := New(context.Background(), testConfig(), WithCompleter(completer))
	require.NoError(t, err)

	_, err = gw.DispatchNamed(context.Background(), "getMoreTagSuggestions", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Empty(t, completer.last.Prompt)
}

func TestNew_MemoryLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RequestsPerWindow = 2

	gw, err := New(context.Background(), cfg, WithCompleter(&staticCompleter{}))
	require.NoError(t, err)

	assert.IsType(t, &memory.Limiter{}, gw.Limiter())
}

func TestNew_RedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RateLimit.RequestsPerWindow = 1
	cfg.RateLimit.Window = time.Hour
	cfg.RateLimit.RedisURL = "redis://" + mr.Addr()

	gw, err := New(context.Background(), cfg, WithCompleter(&staticCompleter{}))
	require.NoError(t, err)
	defer gw.Close()

	require.IsType(t, &redis.Limiter{}, gw.Limiter())
	ok, err := gw.Limiter().Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = gw.Limiter().Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_ClosesLimiterWhenPlatformFails(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RateLimit.RequestsPerWindow = 1
	cfg.RateLimit.RedisURL = "redis://" + mr.Addr()
	cfg.Platform.URL = "ftp://example.supabase.co"
	cfg.Platform.Key = "anon-key"

	_, err := New(context.Background(), cfg, WithCompleter(&staticCompleter{}))

	require.ErrorContains(t, err, "data platform")
	require.Positive(t, mr.TotalConnectionCount())
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestNew_Platform(t *testing.T) {
	cfg := testConfig()
	cfg.Platform.URL = "https://example.supabase.co"
	cfg.Platform.Key = "anon-key"

	gw, err := New(context.Background(), cfg, WithCompleter(&staticCompleter{}))
	require.NoError(t, err)

	require.NotNil(t, gw.Platform())
	assert.Equal(t, "https://example.supabase.co", gw.Platform().URL())
}
