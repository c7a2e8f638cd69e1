/*
Package domain contains the core types of the WolfPad AI gateway.

It defines the names of the AI-backed actions, the payloads the web client sends for
them, the values they produce and the sentinel errors used to classify failures. The
package is kept free of I/O so that adapters (HTTP, MCP, Gemini) can share it.

# Key Entities

  - ActionName: the string key a client uses to select an operation.
  - Task, Goal, AppContext: the productivity data the client embeds in params.
  - SuggestedTaskValues, SuggestedTask, DevelopmentPlan, AssistantResponse: results.
  - RatingScale: bounded numeric ratings (effort, impact) with clamp and default.
  - Schema: the response-shape constraint handed to the completion service.
*/
package domain
