package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfpad/wolfpad/pkg/domain"
)

func TestDecode_EveryKnownAction(t *testing.T) {
	for _, name := range domain.ActionNames() {
		req, err := Decode(string(name), map[string]any{})
		require.NoError(t, err, name)
		assert.Equal(t, name, req.Action())
		assert.NotNil(t, ParamSchema(name), name)
		assert.NotEmpty(t, Description(name), name)
	}
}

func TestDecode_UnknownAction(t *testing.T) {
	for _, name := range []string{"", "getMoreTagSuggestions", "GETTASKSUGGESTIONS", "__proto__"} {
		_, err := Decode(name, map[string]any{"taskName": "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidAction, name)
	}
}

func TestDecode_WeaklyTypedParams(t *testing.T) {
	req, err := Decode("getDevelopmentPlan", map[string]any{
		"goal":         "Learn Go",
		"bookCount":    "3",
		"channelCount": float64(2),
		"podcastCount": 1,
	})
	require.NoError(t, err)

	assert.Equal(t, DevelopmentPlanRequest{
		Goal:         "Learn Go",
		BookCount:    3,
		ChannelCount: 2,
		PodcastCount: 1,
	}, req)
}

func TestDecode_NestedParams(t *testing.T) {
	req, err := Decode("getAiAssistantResponse", map[string]any{
		"query": "What next?",
		"context": map[string]any{
			"currentView": "dashboard",
			"tasks": []any{
				map[string]any{"id": float64(12), "name": "Ship", "impact": float64(9), "due_date": nil, "completed": false, "goal_id": "g1"},
			},
			"goals": []any{
				map[string]any{"name": "Launch", "progress": float64(40)},
			},
		},
	})
	require.NoError(t, err)

	ar, ok := req.(AssistantRequest)
	require.True(t, ok)
	assert.Equal(t, "dashboard", ar.Context.CurrentView)
	require.Len(t, ar.Context.Tasks, 1)
	assert.Equal(t, "12", ar.Context.Tasks[0].ID)
	assert.Equal(t, 9, ar.Context.Tasks[0].Impact)
	assert.Equal(t, "", ar.Context.Tasks[0].DueDate)
	assert.Equal(t, 40, ar.Context.Goals[0].Progress)
}

func TestDecode_InvalidParams(t *testing.T) {
	_, err := Decode("getTaskPrioritization", map[string]any{"tasks": "not a list"})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)

	_, err = Decode("getGoalStrategy", map[string]any{"goal": []any{1, 2}})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}

func TestDecode_NilParams(t *testing.T) {
	req, err := Decode("generateContent", nil)
	require.NoError(t, err)
	assert.Equal(t, GenerateContentRequest{}, req)
}
