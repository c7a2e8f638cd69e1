package actions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

func assistantParams() map[string]any {
	return map[string]any{
		"query": "What should I do next?",
		"context": map[string]any{
			"currentView": "weekly",
			"tasks": []any{
				map[string]any{"name": "Budget review", "due_date": "2026-10-18", "impact": 8, "completed": false, "goal_id": "g-1"},
			},
			"goals": []any{
				map[string]any{"name": "Save money", "progress": 20},
			},
		},
	}
}

func TestAssistant_Answer(t *testing.T) {
	completer := replyWith(`{"responseType":"answer","text":"Start with the budget review."}`)
	d := New(completer)

	result, err := d.DispatchNamed(context.Background(), "getAiAssistantResponse", assistantParams())
	require.NoError(t, err)
	assert.Equal(t, domain.AssistantResponse{ResponseType: "answer", Text: "Start with the budget review."}, result)

	req := completer.Calls[0].Arguments.Get(1).(ports.CompletionRequest)
	assert.Contains(t, req.SystemInstruction, "current view ('weekly')")
	assert.Contains(t, req.SystemInstruction, "'personalDevelopment'")
	assert.Contains(t, req.Prompt, `- VIEW: weekly`)
	assert.Contains(t, req.Prompt, `{"name":"Budget review","due":"2026-10-18","impact":8,"completed":false,"goalId":"g-1"}`)
	assert.Contains(t, req.Prompt, `[{"name":"Save money","progress":20}]`)
	assert.True(t, strings.HasSuffix(req.Prompt, `User query: "What should I do next?"`))
	assert.Equal(t, []string{"responseType", "text"}, req.Schema.Required)
	assert.True(t, req.Schema.Properties["view"].Nullable)
}

func TestAssistant_Navigation(t *testing.T) {
	d := New(replyWith(`{"responseType":"navigation_suggestion","text":"Opening goals.","view":"goals"}`))

	result, err := d.DispatchNamed(context.Background(), "getAiAssistantResponse", assistantParams())
	require.NoError(t, err)

	resp := result.(domain.AssistantResponse)
	assert.Equal(t, domain.ResponseTypeNavigation, resp.ResponseType)
	require.NotNil(t, resp.View)
	assert.Equal(t, "goals", *resp.View)
}

func TestAssistant_FallbackOnCompleterError(t *testing.T) {
	d := New(failWith(errors.New("deadline exceeded")))

	result, err := d.DispatchNamed(context.Background(), "getAiAssistantResponse", assistantParams())
	require.NoError(t, err)

	resp, ok := result.(domain.AssistantResponse)
	require.True(t, ok)
	assert.Equal(t, domain.ResponseTypeAnswer, resp.ResponseType)
	assert.NotEmpty(t, resp.Text)
	assert.Equal(t, "I'm sorry, I've encountered an issue. deadline exceeded", resp.Text)
	assert.Nil(t, resp.View)
}

func TestAssistant_FallbackOnMalformedJSON(t *testing.T) {
	d := New(replyWith("not json"))

	result, err := d.DispatchNamed(context.Background(), "getAiAssistantResponse", assistantParams())
	require.NoError(t, err)

	resp := result.(domain.AssistantResponse)
	assert.Equal(t, domain.ResponseTypeAnswer, resp.ResponseType)
	assert.True(t, strings.HasPrefix(resp.Text, domain.AssistantFallbackPrefix))
}

func TestAssistant_DefaultsResponseType(t *testing.T) {
	d := New(replyWith(`{"text":"Hello!"}`))

	result, err := d.DispatchNamed(context.Background(), "getAiAssistantResponse", map[string]any{"query": "hi"})
	require.NoError(t, err)
	assert.Equal(t, domain.AssistantResponse{ResponseType: "answer", Text: "Hello!"}, result)
}

func TestAssistant_CoercesMalformedReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"unknown response type", `{"responseType":"shrug","text":"Hello!"}`},
		{"navigation to unknown view", `{"responseType":"navigation_suggestion","text":"Hello!","view":"settings"}`},
		{"navigation without view", `{"responseType":"navigation_suggestion","text":"Hello!"}`},
		{"answer with view", `{"responseType":"answer","text":"Hello!","view":"goals"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(replyWith(tt.reply))

			result, err := d.DispatchNamed(context.Background(), "getAiAssistantResponse", map[string]any{"query": "hi"})
			require.NoError(t, err)
			assert.Equal(t, domain.AssistantResponse{ResponseType: "answer", Text: "Hello!"}, result)
		})
	}
}
