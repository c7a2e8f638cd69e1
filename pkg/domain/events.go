package domain

import (
	"context"
	"time"
)

// ActionEvent describes one dispatch of an action.
type ActionEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Action    ActionName    `json:"action"`
	Duration  time.Duration `json:"duration,omitempty"`
	IsError   bool          `json:"is_error,omitempty"`
	// Degraded is set when the action recovered from an upstream failure
	// with a fallback value instead of an error.
	Degraded bool `json:"degraded,omitempty"`
}

// LifecycleHooks defines callbacks for dispatcher observability.
type LifecycleHooks struct {
	OnActionStart func(context.Context, *ActionEvent)
	OnActionEnd   func(context.Context, *ActionEvent)
}
