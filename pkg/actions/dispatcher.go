package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Dispatcher resolves typed requests to their handlers.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	completer ports.Completer
	model     string
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	now       func() time.Time
}

// Option defines a functional option for configuring the Dispatcher.
type Option func(*Dispatcher)

// WithModel sets the completion model identifier.
func WithModel(model string) Option {
	return func(d *Dispatcher) {
		if model != "" {
			d.model = model
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// WithClock overrides the time source used for "today" in prompts and for
// event timing.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// New creates a Dispatcher backed by the given completion service.
func New(completer ports.Completer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		completer: completer,
		model:     DefaultModel,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Names lists the actions the Dispatcher can serve.
func (d *Dispatcher) Names() []domain.ActionName {
	return domain.ActionNames()
}

// DispatchNamed decodes params for the named action and dispatches it.
// Unknown actions fail before the completion service is contacted.
func (d *Dispatcher) DispatchNamed(ctx context.Context, action string, params map[string]any) (any, error) {
	req, err := Decode(action, params)
	if err != nil {
		d.logger.Warn("Rejected action request", "action", action, "error", err)
		return nil, err
	}
	return d.Dispatch(ctx, req)
}

// Dispatch runs the handler for req. It returns either a result or an error,
// never both.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (any, error) {
	if req == nil {
		return nil, domain.ErrInvalidAction
	}

	name := req.Action()
	start := d.now()
	if d.hooks.OnActionStart != nil {
		d.hooks.OnActionStart(ctx, &domain.ActionEvent{Timestamp: start, Action: name})
	}

	var (
		result   any
		err      error
		degraded bool
	)
	switch r := req.(type) {
	case TaskSuggestionsRequest:
		result, err = d.taskSuggestions(ctx, r)
	case TaskBreakdownRequest:
		result, err = d.taskBreakdown(ctx, r)
	case DevelopmentPlanRequest:
		result, err = d.developmentPlan(ctx, r)
	case AlternativeResourceRequest:
		result, err = d.alternativeResource(ctx, r)
	case TaskPrioritizationRequest:
		result, err = d.taskPrioritization(ctx, r)
	case GenerateContentRequest:
		result, err = d.generateContent(ctx, r)
	case GoalStrategyRequest:
		result, err = d.goalStrategy(ctx, r)
	case AssistantRequest:
		result, degraded = d.assistantResponse(ctx, r)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrInvalidAction, name)
	}

	if d.hooks.OnActionEnd != nil {
		end := d.now()
		d.hooks.OnActionEnd(ctx, &domain.ActionEvent{
			Timestamp: end,
			Action:    name,
			Duration:  end.Sub(start),
			IsError:   err != nil,
			Degraded:  degraded,
		})
	}

	if err != nil {
		d.logger.Error("Action failed", "action", name, "error", err)
		return nil, err
	}
	return result, nil
}

func (d *Dispatcher) completeText(ctx context.Context, action domain.ActionName, req ports.CompletionRequest) (string, error) {
	if req.Model == "" {
		req.Model = d.model
	}
	text, err := d.completer.Complete(ctx, req)
	if err != nil {
		return "", domain.NewUpstreamError(action, err)
	}
	return text, nil
}

// completeJSON requests a schema constrained completion and decodes it into T.
func completeJSON[T any](ctx context.Context, d *Dispatcher, action domain.ActionName, req ports.CompletionRequest) (T, error) {
	var out T
	text, err := d.completeText(ctx, action, req)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return out, domain.NewUpstreamError(action, fmt.Errorf("malformed JSON from completion service: %w", err))
	}
	return out, nil
}
