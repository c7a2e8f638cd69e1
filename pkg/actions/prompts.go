package actions

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wolfpad/wolfpad/pkg/domain"
)

func taskSuggestionsPrompt(r TaskSuggestionsRequest) string {
	return fmt.Sprintf(
		`Based on the task name "%s", generate a concise, one-paragraph description (max 3 sentences), estimate its effort (1-5), impact (1-10), and suggest 3-5 relevant single-word tags.`,
		r.TaskName,
	)
}

func taskBreakdownPrompt(r TaskBreakdownRequest) string {
	return fmt.Sprintf(
		`Break down the high-level goal "%s" (Description: "%s") into 5-7 actionable, smaller tasks. For each task, provide a name, a concise one-sentence description, and estimate its effort (1-5) and impact (1-10) relative to achieving the main goal.`,
		r.GoalName, r.GoalDescription,
	)
}

func developmentPlanPrompt(r DevelopmentPlanRequest) string {
	return fmt.Sprintf(
		`Create a personal development plan for the goal: "%s". Provide a list of the top %d books (with authors), %d YouTube channels, and %d podcasts to achieve this goal.`,
		r.Goal, r.BookCount, r.ChannelCount, r.PodcastCount,
	)
}

func alternativeResourcePrompt(r AlternativeResourceRequest) string {
	return fmt.Sprintf(
		`Given the learning goal "%s", suggest an alternative resource for "%s". Provide a title and the author/channel name.`,
		r.Goal, r.ResourceToReplace,
	)
}

func taskPrioritizationPrompt(r TaskPrioritizationRequest, today time.Time) string {
	lines := make([]string, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		due := t.DueDate
		if due == "" {
			due = "None"
		}
		lines = append(lines, fmt.Sprintf("- %s (Impact: %d/10, Due: %s)", t.Name, t.Impact, due))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`Given the following list of pending tasks and today's date (%s), identify the top 3 tasks to focus on. `,
		today.Format(time.DateOnly),
	)
	sb.WriteString(`Provide a very concise, one-sentence justification for each, considering both impact and urgency (due dates). `)
	sb.WriteString(`Keep the total response under 75 words. The output must be a simple numbered list in plain text. Do not use any markdown formatting.`)
	sb.WriteString("\n\nTasks:\n")
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

func generateContentPrompt(r GenerateContentRequest) string {
	return fmt.Sprintf(
		`Please provide a concise, to-the-point response in plain text. Absolutely no markdown formatting. Keep the total response brief. User prompt: "%s"`,
		r.Prompt,
	)
}

func goalStrategyPrompt(r GoalStrategyRequest) string {
	return fmt.Sprintf(
		`Analyze the goal: "%s" (Progress: %d%%). Suggest 3-4 key strategic steps to achieve this. Provide a brief, one-sentence explanation for each. Total response under 100 words. Output as a simple numbered list in plain text, with no markdown.`,
		r.Goal.Name, r.Goal.Progress,
	)
}

func assistantSystemInstruction(ctx domain.AppContext) string {
	views := make([]string, len(domain.AssistantViews))
	for i, v := range domain.AssistantViews {
		views[i] = "'" + v + "'"
	}
	return fmt.Sprintf(
		`You are Wolfie, an AI assistant for the WolfPad app. Your mission is to apply the 80/20 principle to help the user focus. `+
			`You MUST consider the user's current view ('%s') to make responses relevant. `+
			`You MUST respond with a JSON object with 'responseType' and 'text'. `+
			`For navigation, 'responseType' is 'navigation_suggestion' and you must include a 'view' ID and confirmation 'text'. `+
			`Valid views: %s.`,
		ctx.CurrentView, strings.Join(views, ", "),
	)
}

type assistantTask struct {
	Name      string `json:"name"`
	Due       string `json:"due,omitempty"`
	Impact    int    `json:"impact"`
	Completed bool   `json:"completed"`
	GoalID    string `json:"goalId,omitempty"`
}

type assistantGoal struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

func assistantPrompt(r AssistantRequest) (string, error) {
	tasks := make([]assistantTask, 0, len(r.Context.Tasks))
	for _, t := range r.Context.Tasks {
		tasks = append(tasks, assistantTask{
			Name:      t.Name,
			Due:       t.DueDate,
			Impact:    t.Impact,
			Completed: t.Completed,
			GoalID:    t.GoalID,
		})
	}
	goals := make([]assistantGoal, 0, len(r.Context.Goals))
	for _, g := range r.Context.Goals {
		goals = append(goals, assistantGoal{Name: g.Name, Progress: g.Progress})
	}

	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encoding tasks: %w", err)
	}
	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return "", fmt.Errorf("encoding goals: %w", err)
	}

	contextString := fmt.Sprintf("Data: - VIEW: %s - TASKS: %s - GOALS: %s", r.Context.CurrentView, tasksJSON, goalsJSON)
	return fmt.Sprintf("%s\n\nUser query: \"%s\"", contextString, r.Query), nil
}
