package actions

import "github.com/wolfpad/wolfpad/pkg/domain"

func resourceSchema() *domain.Schema {
	return domain.Object(map[string]*domain.Schema{
		"title":           domain.String(),
		"authorOrChannel": domain.String(),
	})
}

// Response shapes requested from the completion service. They constrain types
// only; ranges are enforced after parsing.
var (
	taskSuggestionsSchema = domain.Object(map[string]*domain.Schema{
		"description": domain.String(),
		"effort":      domain.Integer(),
		"impact":      domain.Integer(),
		"tags":        domain.ArrayOf(domain.String()),
	})

	taskBreakdownSchema = domain.Object(map[string]*domain.Schema{
		"tasks": domain.ArrayOf(domain.Object(map[string]*domain.Schema{
			"name":        domain.String(),
			"description": domain.String(),
			"effort":      domain.Integer(),
			"impact":      domain.Integer(),
		})),
	})

	developmentPlanSchema = domain.Object(map[string]*domain.Schema{
		"books":           domain.ArrayOf(resourceSchema()),
		"youtubeChannels": domain.ArrayOf(resourceSchema()),
		"podcasts":        domain.ArrayOf(resourceSchema()),
	})

	alternativeResourceSchema = resourceSchema()

	assistantSchema = domain.Object(map[string]*domain.Schema{
		"responseType": {
			Type: domain.TypeString,
			Enum: []string{domain.ResponseTypeAnswer, domain.ResponseTypeNavigation},
		},
		"text": domain.String(),
		"view": {Type: domain.TypeString, Nullable: true},
	}, "responseType", "text")
)

func taskParamSchema() *domain.Schema {
	return domain.Object(map[string]*domain.Schema{
		"id":          domain.String(),
		"name":        domain.String(),
		"description": domain.String(),
		"effort":      domain.Integer(),
		"impact":      domain.Integer(),
		"due_date":    {Type: domain.TypeString, Nullable: true},
		"completed":   domain.Boolean(),
		"goal_id":     {Type: domain.TypeString, Nullable: true},
		"tags":        domain.ArrayOf(domain.String()),
	}, "name")
}

func goalParamSchema() *domain.Schema {
	return domain.Object(map[string]*domain.Schema{
		"id":          domain.String(),
		"name":        domain.String(),
		"description": domain.String(),
		"progress":    domain.Integer().Describe("Completion percentage (0-100)"),
	}, "name")
}

// ParamSchema returns the shape of the params object accepted by an action,
// or nil for unknown names.
func ParamSchema(name domain.ActionName) *domain.Schema {
	switch name {
	case domain.ActionTaskSuggestions:
		return domain.Object(map[string]*domain.Schema{
			"taskName": domain.String().Describe("Name of the task being created"),
		}, "taskName")
	case domain.ActionTaskBreakdown:
		return domain.Object(map[string]*domain.Schema{
			"goalName":        domain.String(),
			"goalDescription": domain.String(),
		}, "goalName")
	case domain.ActionDevelopmentPlan:
		return domain.Object(map[string]*domain.Schema{
			"goal":         domain.String(),
			"bookCount":    domain.Integer(),
			"channelCount": domain.Integer(),
			"podcastCount": domain.Integer(),
		}, "goal")
	case domain.ActionAlternativeResource:
		return domain.Object(map[string]*domain.Schema{
			"goal":              domain.String(),
			"resourceToReplace": domain.String(),
		}, "goal", "resourceToReplace")
	case domain.ActionTaskPrioritization:
		return domain.Object(map[string]*domain.Schema{
			"tasks": domain.ArrayOf(taskParamSchema()),
		}, "tasks")
	case domain.ActionGenerateContent:
		return domain.Object(map[string]*domain.Schema{
			"prompt": domain.String(),
		}, "prompt")
	case domain.ActionGoalStrategy:
		return domain.Object(map[string]*domain.Schema{
			"goal": goalParamSchema(),
		}, "goal")
	case domain.ActionAssistantResponse:
		return domain.Object(map[string]*domain.Schema{
			"query": domain.String(),
			"context": domain.Object(map[string]*domain.Schema{
				"currentView": domain.String(),
				"tasks":       domain.ArrayOf(taskParamSchema()),
				"goals":       domain.ArrayOf(goalParamSchema()),
			}),
		}, "query")
	default:
		return nil
	}
}

// Descriptions of the actions, used by the MCP adapter and the CLI.
var descriptions = map[domain.ActionName]string{
	domain.ActionTaskSuggestions:     "Suggest a description, effort (1-5), impact (1-10) and tags for a new task.",
	domain.ActionTaskBreakdown:       "Break a high-level goal into 5-7 actionable tasks with effort and impact.",
	domain.ActionDevelopmentPlan:     "Recommend books, YouTube channels and podcasts for a personal development goal.",
	domain.ActionAlternativeResource: "Suggest an alternative to one resource of a development plan.",
	domain.ActionTaskPrioritization:  "Pick the top 3 pending tasks to focus on today, with a short justification.",
	domain.ActionGenerateContent:     "Answer a free-form prompt in brief plain text.",
	domain.ActionGoalStrategy:        "Suggest 3-4 strategic steps toward a goal given its progress.",
	domain.ActionAssistantResponse:   "Reply to a chat message as the in-app assistant, optionally suggesting a view.",
}

// Description returns a one-line summary of an action.
func Description(name domain.ActionName) string {
	return descriptions[name]
}
