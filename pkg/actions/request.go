package actions

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/wolfpad/wolfpad/pkg/domain"
)

// Request is the typed form of an action invocation. Each action has exactly one
// implementation; the set is closed to this package.
type Request interface {
	Action() domain.ActionName
	isRequest()
}

// TaskSuggestionsRequest asks for description, ratings and tags of a new task.
type TaskSuggestionsRequest struct {
	TaskName string `json:"taskName" mapstructure:"taskName"`
}

// TaskBreakdownRequest asks for actionable tasks that achieve a goal.
type TaskBreakdownRequest struct {
	GoalName        string `json:"goalName" mapstructure:"goalName"`
	GoalDescription string `json:"goalDescription" mapstructure:"goalDescription"`
}

// DevelopmentPlanRequest asks for learning resources for a goal.
type DevelopmentPlanRequest struct {
	Goal         string `json:"goal" mapstructure:"goal"`
	BookCount    int    `json:"bookCount" mapstructure:"bookCount"`
	ChannelCount int    `json:"channelCount" mapstructure:"channelCount"`
	PodcastCount int    `json:"podcastCount" mapstructure:"podcastCount"`
}

// AlternativeResourceRequest asks for a replacement for one plan resource.
type AlternativeResourceRequest struct {
	Goal              string `json:"goal" mapstructure:"goal"`
	ResourceToReplace string `json:"resourceToReplace" mapstructure:"resourceToReplace"`
}

// TaskPrioritizationRequest asks which pending tasks deserve focus today.
type TaskPrioritizationRequest struct {
	Tasks []domain.Task `json:"tasks" mapstructure:"tasks"`
}

// GenerateContentRequest is a free-form prompt answered in plain text.
type GenerateContentRequest struct {
	Prompt string `json:"prompt" mapstructure:"prompt"`
}

// GoalStrategyRequest asks for strategic steps toward a goal.
type GoalStrategyRequest struct {
	Goal domain.Goal `json:"goal" mapstructure:"goal"`
}

// AssistantRequest is a chat message for the in-app assistant.
type AssistantRequest struct {
	Query   string            `json:"query" mapstructure:"query"`
	Context domain.AppContext `json:"context" mapstructure:"context"`
}

func (TaskSuggestionsRequest) Action() domain.ActionName     { return domain.ActionTaskSuggestions }
func (TaskBreakdownRequest) Action() domain.ActionName       { return domain.ActionTaskBreakdown }
func (DevelopmentPlanRequest) Action() domain.ActionName     { return domain.ActionDevelopmentPlan }
func (AlternativeResourceRequest) Action() domain.ActionName { return domain.ActionAlternativeResource }
func (TaskPrioritizationRequest) Action() domain.ActionName  { return domain.ActionTaskPrioritization }
func (GenerateContentRequest) Action() domain.ActionName     { return domain.ActionGenerateContent }
func (GoalStrategyRequest) Action() domain.ActionName        { return domain.ActionGoalStrategy }
func (AssistantRequest) Action() domain.ActionName           { return domain.ActionAssistantResponse }

func (TaskSuggestionsRequest) isRequest()     {}
func (TaskBreakdownRequest) isRequest()       {}
func (DevelopmentPlanRequest) isRequest()     {}
func (AlternativeResourceRequest) isRequest() {}
func (TaskPrioritizationRequest) isRequest()  {}
func (GenerateContentRequest) isRequest()     {}
func (GoalStrategyRequest) isRequest()        {}
func (AssistantRequest) isRequest()           {}

var decoders = map[domain.ActionName]func(map[string]any) (Request, error){
	domain.ActionTaskSuggestions:     decodeAs[TaskSuggestionsRequest],
	domain.ActionTaskBreakdown:       decodeAs[TaskBreakdownRequest],
	domain.ActionDevelopmentPlan:     decodeAs[DevelopmentPlanRequest],
	domain.ActionAlternativeResource: decodeAs[AlternativeResourceRequest],
	domain.ActionTaskPrioritization:  decodeAs[TaskPrioritizationRequest],
	domain.ActionGenerateContent:     decodeAs[GenerateContentRequest],
	domain.ActionGoalStrategy:        decodeAs[GoalStrategyRequest],
	domain.ActionAssistantResponse:   decodeAs[AssistantRequest],
}

// Decode resolves action to its typed Request and decodes params into it.
// Strings in params are sanitized first. Unknown names yield
// domain.ErrInvalidAction; params of the wrong shape, oversized or invalid
// text yield domain.ErrInvalidParams.
func Decode(action string, params map[string]any) (Request, error) {
	decode, ok := decoders[domain.ActionName(action)]
	if !ok {
		if action == "" {
			return nil, domain.ErrInvalidAction
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}
	clean, err := sanitizeParams(params)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %v", domain.ErrInvalidParams, action, err)
	}
	return decode(clean)
}

func decodeAs[T Request](params map[string]any) (Request, error) {
	var req T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &req,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(params); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", domain.ErrInvalidParams, req.Action(), err)
	}
	return req, nil
}
