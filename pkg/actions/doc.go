/*
Package actions implements the action registry of the WolfPad AI gateway.

A client names an action and sends a params object. Decode turns that pair into a typed
Request (one struct per action) and rejects unknown names before anything else happens.
Dispatcher.Dispatch then builds the action's prompt, calls the injected Completer with
the action's response schema, parses the JSON answer and clamps bounded ratings.

	d := actions.New(completer, actions.WithLogger(logger))
	result, err := d.DispatchNamed(ctx, "getTaskSuggestions", map[string]any{"taskName": "Write report"})

Dispatch is stateless: every call is independent and the Dispatcher may be shared
between goroutines.
*/
package actions
