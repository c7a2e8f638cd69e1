package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wolfpad/wolfpad/internal/logging"
	"github.com/wolfpad/wolfpad/internal/presentation/tui"
	"github.com/wolfpad/wolfpad/pkg/client"
)

var callCmd = &cobra.Command{
	Use:   "call <action>",
	Short: "Call an action on a running gateway",
	Long: `Posts one action request to a running gateway and prints the result.
Text results are rendered as markdown when stdout is a terminal.

Examples:
  wolfpad call generateContent --param prompt="Summarize my week"
  wolfpad call getDevelopmentPlan --params '{"goal":"Learn Go","bookCount":2,"channelCount":1,"podcastCount":1}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		raw, _ := cmd.Flags().GetString("params")
		pairs, _ := cmd.Flags().GetStringArray("param")

		params, err := parseParams(raw, pairs)
		if err != nil {
			return err
		}

		c := client.New(url, client.WithLogger(logging.New(logging.ParseLevel(os.Getenv("WOLFPAD_LOG_LEVEL")), logging.FormatText)))
		var result any
		if err := c.Call(context.Background(), args[0], params, &result); err != nil {
			return err
		}
		return tui.PrintResult(os.Stdout, result, tui.IsTerminal(os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().String("url", "http://localhost:8080", "Base URL of the gateway")
	callCmd.Flags().String("params", "", "Params as a JSON object")
	callCmd.Flags().StringArrayP("param", "p", nil, "Param as key=value; values that parse as JSON keep their type (repeatable)")
}

// parseParams merges a JSON object with key=value pairs. Pairs win.
func parseParams(raw string, pairs []string) (map[string]any, error) {
	params := map[string]any{}
	if strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return nil, fmt.Errorf("--params must be a JSON object: %w", err)
		}
		if params == nil {
			return nil, fmt.Errorf("--params must be a JSON object, got %s", strings.TrimSpace(raw))
		}
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", pair)
		}
		var typed any
		if err := json.Unmarshal([]byte(value), &typed); err != nil {
			typed = value
		}
		params[key] = typed
	}
	return params, nil
}
