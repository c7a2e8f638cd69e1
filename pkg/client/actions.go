package client

import (
	"context"

	"github.com/wolfpad/wolfpad/pkg/domain"
)

// ActionMoreTagSuggestions is requested by the web client but not served by
// the gateway; calls fail with a 400 APIError.
const ActionMoreTagSuggestions = "getMoreTagSuggestions"

func (c *Client) GetTaskSuggestions(ctx context.Context, taskName string) (domain.SuggestedTaskValues, error) {
	return Invoke[domain.SuggestedTaskValues](ctx, c, domain.ActionTaskSuggestions.String(), map[string]any{
		"taskName": taskName,
	})
}

func (c *Client) GetMoreTagSuggestions(ctx context.Context, taskName, description string) ([]string, error) {
	return Invoke[[]string](ctx, c, ActionMoreTagSuggestions, map[string]any{
		"taskName":    taskName,
		"description": description,
	})
}

func (c *Client) GetTaskBreakdownForGoal(ctx context.Context, goalName, goalDescription string) ([]domain.SuggestedTask, error) {
	return Invoke[[]domain.SuggestedTask](ctx, c, domain.ActionTaskBreakdown.String(), map[string]any{
		"goalName":        goalName,
		"goalDescription": goalDescription,
	})
}

func (c *Client) GetDevelopmentPlan(ctx context.Context, goal string, bookCount, channelCount, podcastCount int) (domain.DevelopmentPlan, error) {
	return Invoke[domain.DevelopmentPlan](ctx, c, domain.ActionDevelopmentPlan.String(), map[string]any{
		"goal":         goal,
		"bookCount":    bookCount,
		"channelCount": channelCount,
		"podcastCount": podcastCount,
	})
}

func (c *Client) GetAlternativeResource(ctx context.Context, goal, resourceToReplace string) (domain.DevelopmentResource, error) {
	return Invoke[domain.DevelopmentResource](ctx, c, domain.ActionAlternativeResource.String(), map[string]any{
		"goal":              goal,
		"resourceToReplace": resourceToReplace,
	})
}

func (c *Client) GetTaskPrioritization(ctx context.Context, tasks []domain.Task) (string, error) {
	return Invoke[string](ctx, c, domain.ActionTaskPrioritization.String(), map[string]any{
		"tasks": tasks,
	})
}

func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return Invoke[string](ctx, c, domain.ActionGenerateContent.String(), map[string]any{
		"prompt": prompt,
	})
}

func (c *Client) GetGoalStrategy(ctx context.Context, goal domain.Goal) (string, error) {
	return Invoke[string](ctx, c, domain.ActionGoalStrategy.String(), map[string]any{
		"goal": goal,
	})
}

// GetAiAssistantResponse never fails: any error becomes an answer that
// explains it, ready to show in the chat.
func (c *Client) GetAiAssistantResponse(ctx context.Context, query string, appCtx domain.AppContext) domain.AssistantResponse {
	resp, err := Invoke[domain.AssistantResponse](ctx, c, domain.ActionAssistantResponse.String(), map[string]any{
		"query":   query,
		"context": appCtx,
	})
	if err == nil {
		return resp
	}

	c.logger.Warn("Assistant call failed, answering with fallback", "error", err)
	return domain.AssistantFallback(err)
}
