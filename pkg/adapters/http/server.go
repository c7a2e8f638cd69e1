package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wolfpad/wolfpad"
	"github.com/wolfpad/wolfpad/pkg/observability"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

// ActionPath is the single AI endpoint.
const ActionPath = "/api/ai"

// DefaultTimeout bounds one completion call.
const DefaultTimeout = 60 * time.Second

// Dispatcher runs a named action with raw params.
type Dispatcher interface {
	DispatchNamed(ctx context.Context, action string, params map[string]any) (any, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves the action endpoint and its operational routes.
type Server struct {
	dispatcher Dispatcher
	limiter    ports.RateLimiter
	platform   Pinger
	metrics    *observability.Metrics
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	timeout    time.Duration
	version    string
	trustProxy bool
}

// Option configures the Server.
type Option func(*Server)

// WithRateLimiter rejects callers over budget with 429.
func WithRateLimiter(l ports.RateLimiter) Option {
	return func(s *Server) {
		s.limiter = l
	}
}

// WithPlatform sets the dependency probed by /ready.
func WithPlatform(p Pinger) Option {
	return func(s *Server) {
		s.platform = p
	}
}

// WithMetrics records response codes and limiter rejections.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithGatherer exposes the gatherer on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout bounds each upstream call.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithVersion overrides the version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// WithTrustProxyHeaders takes the client address from X-Forwarded-For and
// X-Real-IP. Enable it only behind a proxy that overwrites those headers.
func WithTrustProxyHeaders(trust bool) Option {
	return func(s *Server) {
		s.trustProxy = trust
	}
}

// NewServer creates a Server for the given dispatcher.
func NewServer(d Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout:    DefaultTimeout,
		version:    strings.TrimSpace(wolfpad.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler builds the HTTP handler. It fails when the embedded OpenAPI
// document does not validate.
func NewHandler(d Dispatcher, opts ...Option) (http.Handler, error) {
	return NewServer(d, opts...).Handler()
}

// Handler returns the routed handler for the server.
func (s *Server) Handler() (http.Handler, error) {
	if _, err := Spec(); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if s.trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(s.recoverer)
	r.Use(enableCORS)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("Method Not Allowed"))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("Not Found"))
	})

	r.With(s.rateLimit).Post(ActionPath, s.handleAction)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Get("/info", s.handleInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r, nil
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>WolfPad AI Gateway</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// handleHealth handles the GET /health request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady handles the GET /ready request.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.platform == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := s.platform.Ping(ctx); err != nil {
		s.logger.Warn("Readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleInfo handles the GET /info request.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := Spec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "wolfpad-http",
		"version":     s.version,
		"api_version": apiVersion,
	})
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
