package observability

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/wolfpad/wolfpad/pkg/domain"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	start := &domain.ActionEvent{Action: domain.ActionGoalStrategy}
	hooks.OnActionStart(ctx, start)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight.WithLabelValues("getGoalStrategy")))

	hooks.OnActionEnd(ctx, &domain.ActionEvent{Action: domain.ActionGoalStrategy, Duration: time.Second})
	hooks.OnActionStart(ctx, start)
	hooks.OnActionEnd(ctx, &domain.ActionEvent{Action: domain.ActionGoalStrategy, IsError: true})
	hooks.OnActionStart(ctx, &domain.ActionEvent{Action: domain.ActionAssistantResponse})
	hooks.OnActionEnd(ctx, &domain.ActionEvent{Action: domain.ActionAssistantResponse, Degraded: true})

	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight.WithLabelValues("getGoalStrategy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("getGoalStrategy", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("getGoalStrategy", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("getAiAssistantResponse", OutcomeDegraded)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RateLimited()
	m.ObserveStatus(200)
	m.ObserveStatus(200)
	m.ObserveStatus(500)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.limited))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("500")))
}

func TestMerge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnActionEnd: func(context.Context, *domain.ActionEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnActionStart: func(context.Context, *domain.ActionEvent) { calls = append(calls, "b-start") },
		OnActionEnd:   func(context.Context, *domain.ActionEvent) { calls = append(calls, "b") },
	}

	merged := Merge(a, b)
	merged.OnActionStart(context.Background(), &domain.ActionEvent{})
	merged.OnActionEnd(context.Background(), &domain.ActionEvent{})

	assert.Equal(t, []string{"b-start", "a", "b"}, calls)
}
