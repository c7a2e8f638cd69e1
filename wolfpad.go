package wolfpad

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/wolfpad/wolfpad/internal/config"
	"github.com/wolfpad/wolfpad/pkg/actions"
	"github.com/wolfpad/wolfpad/pkg/adapters/gemini"
	"github.com/wolfpad/wolfpad/pkg/adapters/memory"
	"github.com/wolfpad/wolfpad/pkg/adapters/platform"
	"github.com/wolfpad/wolfpad/pkg/adapters/redis"
	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/observability"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

// Gateway is the high-level entry point of the module.
// It owns the dispatcher and the optional infrastructure around it.
type Gateway struct {
	dispatcher *actions.Dispatcher
	completer  ports.Completer
	limiter    ports.RateLimiter
	platform   *platform.Client
	metrics    *observability.Metrics
	registry   *prometheus.Registry
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	closers    []io.Closer
}

// Option defines a functional option for configuring the Gateway.
type Option func(*Gateway)

// WithCompleter injects a completion service, bypassing the Gemini client.
func WithCompleter(c ports.Completer) Option {
	return func(g *Gateway) {
		g.completer = c
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks that run after the
// built-in metrics hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Gateway) {
		g.hooks = hooks
	}
}

// WithRegistry registers metrics on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(g *Gateway) {
		g.registry = reg
	}
}

// New validates cfg and assembles a Gateway.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Gateway{}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.registry == nil {
		g.registry = prometheus.NewRegistry()
		g.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	g.metrics = observability.NewMetrics(g.registry)

	if g.completer == nil {
		c, err := gemini.New(ctx, cfg.AI.APIKey,
			gemini.WithModel(cfg.AI.Model),
			gemini.WithBaseURL(cfg.AI.BaseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize completion service: %w", err)
		}
		g.logger.Debug("Completion service ready", "model", c.Model())
		g.completer = c
	}

	if err := g.initLimiter(ctx, cfg.RateLimit); err != nil {
		return nil, err
	}

	if cfg.Platform.Enabled() {
		p, err := platform.New(cfg.Platform.URL, cfg.Platform.Key)
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("failed to initialize data platform client: %w", err)
		}
		g.logger.Debug("Data platform configured", "url", p.URL())
		g.platform = p
	}

	g.dispatcher = actions.New(g.completer,
		actions.WithModel(cfg.AI.Model),
		actions.WithLogger(g.logger),
		actions.WithLifecycleHooks(observability.Merge(
			g.metrics.Hooks(),
			observability.LogHooks(g.logger.Debug),
			g.hooks,
		)),
	)
	return g, nil
}

func (g *Gateway) initLimiter(ctx context.Context, cfg config.RateLimitConfig) error {
	if !cfg.Enabled() {
		return nil
	}
	if cfg.RedisURL == "" {
		g.limiter = memory.NewLimiter(cfg.RequestsPerWindow, cfg.Window)
		return nil
	}

	l, err := redis.NewLimiter(cfg.RedisURL, cfg.RequestsPerWindow, redis.WithWindow(cfg.Window))
	if err != nil {
		return err
	}
	if err := l.Ping(ctx); err != nil {
		// Requests fail open while Redis is down, so this is not fatal.
		g.logger.Warn("Redis unreachable at startup", "error", err)
	}
	g.limiter = l
	g.closers = append(g.closers, l)
	return nil
}

// DispatchNamed runs the named action with raw params.
func (g *Gateway) DispatchNamed(ctx context.Context, action string, params map[string]any) (any, error) {
	return g.dispatcher.DispatchNamed(ctx, action, params)
}

// Dispatcher returns the underlying action dispatcher.
func (g *Gateway) Dispatcher() *actions.Dispatcher {
	return g.dispatcher
}

// Limiter returns the configured rate limiter, or nil when limiting is off.
func (g *Gateway) Limiter() ports.RateLimiter {
	return g.limiter
}

// Platform returns the data platform client, or nil when not configured.
func (g *Gateway) Platform() *platform.Client {
	return g.platform
}

// Metrics returns the gateway collectors.
func (g *Gateway) Metrics() *observability.Metrics {
	return g.metrics
}

// Registry returns the registry holding the gateway metrics.
func (g *Gateway) Registry() *prometheus.Registry {
	return g.registry
}

// Close releases backend connections.
func (g *Gateway) Close() error {
	var errs []error
	for _, c := range g.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
