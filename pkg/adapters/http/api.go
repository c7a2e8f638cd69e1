package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wolfpad/wolfpad/pkg/domain"
)

// maxBodyBytes caps request bodies; assistant requests carry the user's
// whole task list.
const maxBodyBytes = 1 << 20

type actionBody struct {
	Action any            `json:"action"`
	Params map[string]any `json:"params"`
}

// handleAction handles the POST /api/ai request.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var body actionBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.logger.Warn("Action: Invalid request body", "error", err)
		s.respond(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	action, ok := body.Action.(string)
	if !ok || action == "" {
		s.respond(w, http.StatusBadRequest, errorBody("Invalid or missing action"))
		return
	}
	if body.Params == nil {
		body.Params = map[string]any{}
	}

	// A client disconnect must not abort a completion already paid for.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), s.timeout)
	defer cancel()

	result, err := s.dispatcher.DispatchNamed(ctx, action, body.Params)
	if err != nil {
		code, msg := classify(err)
		if code == http.StatusInternalServerError {
			s.logger.Error("Action failed", "action", action, "error", err)
		} else {
			s.logger.Warn("Action rejected", "action", action, "error", err)
		}
		s.respond(w, code, errorBody(msg))
		return
	}

	s.respond(w, http.StatusOK, result)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, "Invalid or missing action"
	case errors.Is(err, domain.ErrInvalidParams):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Too Many Requests"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusInternalServerError, "The AI service took too long to respond."
	}
	msg := err.Error()
	if msg == "" {
		msg = "An unknown error occurred."
	}
	return http.StatusInternalServerError, msg
}

func (s *Server) respond(w http.ResponseWriter, code int, v any) {
	if s.metrics != nil {
		s.metrics.ObserveStatus(code)
	}
	writeJSON(w, code, v)
}
