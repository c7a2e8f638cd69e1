package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResult_PlainText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintResult(&buf, "Focus on **one** thing.", false))
	assert.Equal(t, "Focus on **one** thing.\n", buf.String())
}

func TestPrintResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintResult(&buf, map[string]any{"tags": []string{"work"}}, true))
	assert.JSONEq(t, `{"tags":["work"]}`, buf.String())
	assert.Contains(t, buf.String(), "\n  ")
}

func TestPrintResult_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintResult(&buf, "# Plan\n\n- read", true))
	assert.Contains(t, buf.String(), "Plan")
	assert.Contains(t, buf.String(), "read")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.0.0")
	assert.Contains(t, buf.String(), "AI gateway 1.0.0")
}

func TestErrorText(t *testing.T) {
	assert.Contains(t, ErrorText("boom"), "Error: boom")
}
