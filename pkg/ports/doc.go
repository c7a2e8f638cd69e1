/*
Package ports defines the driven ports (interfaces) of the WolfPad AI gateway.

These interfaces decouple the action handlers from concrete services, so the Gemini
client, the rate limiter backend and their test doubles can be swapped at construction.

# Key Interfaces

  - Completer: sends a prompt (optionally schema constrained) to the completion service.
  - RateLimiter: decides whether a caller may issue another request in the current window.
*/
package ports
