package actions

import (
	"context"
	"slices"

	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

// assistantResponse always yields a displayable reply. The chat view renders
// the value directly, so failures become an answer that embeds the reason.
// The second return value reports whether the fallback was used.
func (d *Dispatcher) assistantResponse(ctx context.Context, r AssistantRequest) (domain.AssistantResponse, bool) {
	prompt, err := assistantPrompt(r)
	if err != nil {
		return d.assistantFallback(r, err), true
	}

	resp, err := completeJSON[domain.AssistantResponse](ctx, d, r.Action(), ports.CompletionRequest{
		Prompt:            prompt,
		SystemInstruction: assistantSystemInstruction(r.Context),
		Schema:            assistantSchema,
	})
	if err != nil {
		return d.assistantFallback(r, err), true
	}

	return normalizeAssistant(resp), false
}

// normalizeAssistant demotes anything that is not a well-formed navigation
// suggestion to a plain answer. View survives only with a known view name.
func normalizeAssistant(resp domain.AssistantResponse) domain.AssistantResponse {
	if resp.ResponseType == domain.ResponseTypeNavigation &&
		resp.View != nil && slices.Contains(domain.AssistantViews, *resp.View) {
		return resp
	}
	resp.ResponseType = domain.ResponseTypeAnswer
	resp.View = nil
	return resp
}

func (d *Dispatcher) assistantFallback(r AssistantRequest, err error) domain.AssistantResponse {
	d.logger.Warn("Assistant degraded to fallback reply", "action", r.Action(), "error", err)
	return domain.AssistantFallback(err)
}
