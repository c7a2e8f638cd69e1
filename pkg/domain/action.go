package domain

// ActionName identifies one AI-backed operation exposed by the gateway.
type ActionName string

// Known actions. The set is closed: any other name is rejected before the
// completion service is contacted.
const (
	ActionTaskSuggestions     ActionName = "getTaskSuggestions"
	ActionTaskBreakdown       ActionName = "getTaskBreakdownForGoal"
	ActionDevelopmentPlan     ActionName = "getDevelopmentPlan"
	ActionAlternativeResource ActionName = "getAlternativeResource"
	ActionTaskPrioritization  ActionName = "getTaskPrioritization"
	ActionGenerateContent     ActionName = "generateContent"
	ActionGoalStrategy        ActionName = "getGoalStrategy"
	ActionAssistantResponse   ActionName = "getAiAssistantResponse"
)

// ActionNames returns every known action in a stable order.
func ActionNames() []ActionName {
	return []ActionName{
		ActionTaskSuggestions,
		ActionTaskBreakdown,
		ActionDevelopmentPlan,
		ActionAlternativeResource,
		ActionTaskPrioritization,
		ActionGenerateContent,
		ActionGoalStrategy,
		ActionAssistantResponse,
	}
}

// IsKnown reports whether name is part of the action set.
func (n ActionName) IsKnown() bool {
	for _, known := range ActionNames() {
		if n == known {
			return true
		}
	}
	return false
}

func (n ActionName) String() string {
	return string(n)
}
