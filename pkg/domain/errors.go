package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned when the action name is empty or unknown.
var ErrInvalidAction = errors.New("invalid or missing action")

// ErrInvalidParams is returned when params cannot be decoded for the selected action.
var ErrInvalidParams = errors.New("invalid action params")

// ErrUpstream classifies failures of the completion service, including
// responses that do not parse as the declared JSON shape.
var ErrUpstream = errors.New("completion service failure")

// ErrRateLimited is returned when a caller exceeded its request budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// UpstreamError carries a human readable reason for a failed action.
// It matches both ErrUpstream and the wrapped cause with errors.Is.
type UpstreamError struct {
	Action ActionName
	Err    error
}

// NewUpstreamError wraps err as a failure of the given action.
func NewUpstreamError(action ActionName, err error) *UpstreamError {
	return &UpstreamError{Action: action, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return fmt.Sprintf("An unknown error occurred while processing %s.", e.Action)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}
