// Package generation provides interfaces and error types for interacting
// with external AI/LLM services. It abstracts the details of LLM API
// integration (Gemini), allowing the application to turn prompts into
// assessment text without coupling to a specific external service.
package generation
