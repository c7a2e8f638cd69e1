package ports

import (
	"context"

	"github.com/wolfpad/wolfpad/pkg/domain"
)

// CompletionRequest is a single prompt sent to the completion service.
type CompletionRequest struct {
	// Model overrides the completer's default model when set.
	Model             string
	Prompt            string
	SystemInstruction string
	// Schema constrains the output to JSON of the given shape. Nil means plain text.
	Schema *domain.Schema
}

// Completer is the generative-AI completion service.
// Implementations must be safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
