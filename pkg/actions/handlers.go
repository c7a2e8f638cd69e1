package actions

import (
	"context"

	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

// rawTask mirrors SuggestedTask with loosely typed ratings, since the schema
// only hints the type and the service may omit or stringify them.
type rawTask struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effort      any    `json:"effort"`
	Impact      any    `json:"impact"`
}

type rawTaskSuggestions struct {
	Description string   `json:"description"`
	Effort      any      `json:"effort"`
	Impact      any      `json:"impact"`
	Tags        []string `json:"tags"`
}

func (d *Dispatcher) taskSuggestions(ctx context.Context, r TaskSuggestionsRequest) (domain.SuggestedTaskValues, error) {
	raw, err := completeJSON[rawTaskSuggestions](ctx, d, r.Action(), ports.CompletionRequest{
		Prompt: taskSuggestionsPrompt(r),
		Schema: taskSuggestionsSchema,
	})
	if err != nil {
		return domain.SuggestedTaskValues{}, err
	}
	return domain.SuggestedTaskValues{
		Description: raw.Description,
		Effort:      domain.EffortScale.Clamp(raw.Effort),
		Impact:      domain.ImpactScale.Clamp(raw.Impact),
		Tags:        raw.Tags,
	}, nil
}

func (d *Dispatcher) taskBreakdown(ctx context.Context, r TaskBreakdownRequest) ([]domain.SuggestedTask, error) {
	raw, err := completeJSON[struct {
		Tasks []rawTask `json:"tasks"`
	}](ctx, d, r.Action(), ports.CompletionRequest{
		Prompt: taskBreakdownPrompt(r),
		Schema: taskBreakdownSchema,
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.SuggestedTask, 0, len(raw.Tasks))
	for _, t := range raw.Tasks {
		tasks = append(tasks, domain.SuggestedTask{
			Name:        t.Name,
			Description: t.Description,
			Effort:      domain.EffortScale.Clamp(t.Effort),
			Impact:      domain.ImpactScale.Clamp(t.Impact),
		})
	}
	return tasks, nil
}

func (d *Dispatcher) developmentPlan(ctx context.Context, r DevelopmentPlanRequest) (domain.DevelopmentPlan, error) {
	return completeJSON[domain.DevelopmentPlan](ctx, d, r.Action(), ports.CompletionRequest{
		Prompt: developmentPlanPrompt(r),
		Schema: developmentPlanSchema,
	})
}

func (d *Dispatcher) alternativeResource(ctx context.Context, r AlternativeResourceRequest) (domain.DevelopmentResource, error) {
	return completeJSON[domain.DevelopmentResource](ctx, d, r.Action(), ports.CompletionRequest{
		Prompt: alternativeResourcePrompt(r),
		Schema: alternativeResourceSchema,
	})
}

func (d *Dispatcher) taskPrioritization(ctx context.Context, r TaskPrioritizationRequest) (string, error) {
	return d.completeText(ctx, r.Action(), ports.CompletionRequest{
		Prompt: taskPrioritizationPrompt(r, d.now()),
	})
}

func (d *Dispatcher) generateContent(ctx context.Context, r GenerateContentRequest) (string, error) {
	return d.completeText(ctx, r.Action(), ports.CompletionRequest{
		Prompt: generateContentPrompt(r),
	})
}

func (d *Dispatcher) goalStrategy(ctx context.Context, r GoalStrategyRequest) (string, error) {
	return d.completeText(ctx, r.Action(), ports.CompletionRequest{
		Prompt: goalStrategyPrompt(r),
	})
}
