package observability

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wolfpad/wolfpad/pkg/domain"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeDegraded = "degraded"
)

// Metrics holds the gateway collectors.
type Metrics struct {
	actions  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
	limited  prometheus.Counter
	requests *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wolfpad_actions_total",
				Help: "Total number of dispatched actions by outcome",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wolfpad_action_duration_seconds",
				Help:    "Duration of action dispatch including the completion call",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"action"},
		),
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wolfpad_actions_in_flight",
				Help: "Actions currently waiting on the completion service",
			},
			[]string{"action"},
		),
		limited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wolfpad_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wolfpad_http_requests_total",
				Help: "HTTP requests to the action endpoint by status code",
			},
			[]string{"code"},
		),
	}
	reg.MustRegister(m.actions, m.duration, m.inFlight, m.limited, m.requests)
	return m
}

// Hooks returns lifecycle hooks that record action metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionStart: func(_ context.Context, e *domain.ActionEvent) {
			m.inFlight.WithLabelValues(e.Action.String()).Inc()
		},
		OnActionEnd: func(_ context.Context, e *domain.ActionEvent) {
			name := e.Action.String()
			m.inFlight.WithLabelValues(name).Dec()
			m.duration.WithLabelValues(name).Observe(e.Duration.Seconds())

			outcome := OutcomeOK
			switch {
			case e.IsError:
				outcome = OutcomeError
			case e.Degraded:
				outcome = OutcomeDegraded
			}
			m.actions.WithLabelValues(name, outcome).Inc()
		},
	}
}

// RateLimited counts a rejected request.
func (m *Metrics) RateLimited() {
	m.limited.Inc()
}

// ObserveStatus counts an HTTP response on the action endpoint.
func (m *Metrics) ObserveStatus(code int) {
	m.requests.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Merge combines hooks so that each callback runs in order.
func Merge(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionStart: func(ctx context.Context, e *domain.ActionEvent) {
			for _, h := range hooks {
				if h.OnActionStart != nil {
					h.OnActionStart(ctx, e)
				}
			}
		},
		OnActionEnd: func(ctx context.Context, e *domain.ActionEvent) {
			for _, h := range hooks {
				if h.OnActionEnd != nil {
					h.OnActionEnd(ctx, e)
				}
			}
		},
	}
}

// LogHooks returns hooks that log action completions through logf, which
// receives a message and slog-style key/value pairs.
func LogHooks(logf func(msg string, args ...any)) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionEnd: func(_ context.Context, e *domain.ActionEvent) {
			logf("action_end",
				"action", e.Action,
				"duration", e.Duration,
				"is_error", e.IsError,
				"degraded", e.Degraded,
			)
		},
	}
}
