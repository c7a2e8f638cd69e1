/*
Package wolfpad is the AI gateway of the WolfPad productivity app.

The web client never holds the completion service credential. It posts a named
action with its params to a single endpoint, and the gateway builds the prompt,
calls the completion service with a response schema and returns the validated
result.

# Concept

Every action is a closed, typed request variant (see package actions). The
Gateway wires the pieces a deployment needs around the action dispatcher:

  - the Gemini completer, authenticated with the key from configuration;
  - an optional per-client rate limiter, in memory or on Redis;
  - an optional data platform client used for readiness checks;
  - Prometheus metrics fed by dispatcher lifecycle hooks.

# Usage

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}
	gw, err := wolfpad.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer gw.Close()

	result, err := gw.DispatchNamed(ctx, "generateContent", map[string]any{"prompt": "Hello"})

The HTTP adapter (pkg/adapters/http) and the MCP adapter (pkg/adapters/mcp)
accept the Gateway as their dispatcher. Package client is the matching caller.
*/
package wolfpad
