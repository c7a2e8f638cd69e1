package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams(`{"goal":"Learn Go","bookCount":1}`, []string{
		"bookCount=3",
		"prompt=Summarize my week",
		"tasks=[]",
		"flag=true",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"goal":      "Learn Go",
		"bookCount": float64(3),
		"prompt":    "Summarize my week",
		"tasks":     []any{},
		"flag":      true,
	}, params)
}

func TestParseParams_Empty(t *testing.T) {
	params, err := parseParams("", nil)
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestParseParams_Errors(t *testing.T) {
	_, err := parseParams(`["not","an","object"]`, nil)
	assert.ErrorContains(t, err, "--params")

	_, err = parseParams("null", []string{"prompt=hi"})
	assert.ErrorContains(t, err, "--params")

	_, err = parseParams("", []string{"novalue"})
	assert.ErrorContains(t, err, "key=value")

	_, err = parseParams("", []string{"=x"})
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "call", "actions", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}
