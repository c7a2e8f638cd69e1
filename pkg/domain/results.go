package domain

// SuggestedTaskValues are the fields proposed for a task being created.
type SuggestedTaskValues struct {
	Description string   `json:"description"`
	Effort      int      `json:"effort"`
	Impact      int      `json:"impact"`
	Tags        []string `json:"tags"`
}

// SuggestedTask is one step of a goal breakdown.
type SuggestedTask struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effort      int    `json:"effort"`
	Impact      int    `json:"impact"`
}

// DevelopmentResource is a book, channel or podcast recommendation.
type DevelopmentResource struct {
	Title           string `json:"title"`
	AuthorOrChannel string `json:"authorOrChannel"`
}

// DevelopmentPlan groups learning resources for a personal goal.
type DevelopmentPlan struct {
	Books           []DevelopmentResource `json:"books"`
	YoutubeChannels []DevelopmentResource `json:"youtubeChannels"`
	Podcasts        []DevelopmentResource `json:"podcasts"`
}

// Assistant response types.
const (
	ResponseTypeAnswer     = "answer"
	ResponseTypeNavigation = "navigation_suggestion"
)

// AssistantFallbackPrefix opens the reply used when the assistant cannot answer.
const AssistantFallbackPrefix = "I'm sorry, I've encountered an issue. "

// AssistantFallback turns err into an answer that can be shown in the chat.
func AssistantFallback(err error) AssistantResponse {
	msg := "An unexpected error occurred."
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return AssistantResponse{
		ResponseType: ResponseTypeAnswer,
		Text:         AssistantFallbackPrefix + msg,
	}
}

// AssistantResponse is a chat reply rendered directly in the conversation.
// View is only set for navigation suggestions.
type AssistantResponse struct {
	ResponseType string  `json:"responseType"`
	Text         string  `json:"text"`
	View         *string `json:"view,omitempty"`
}
