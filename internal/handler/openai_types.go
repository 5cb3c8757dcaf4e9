// Package handler provides the HTTP handlers for the completion gateway.
package handler

// OpenAI-compatible request/response types.
// These types mirror the OpenAI API format so any OpenAI client can talk to
// the gateway regardless of the backend the client resolved to.

// ChatRequest represents an OpenAI-style chat completion request.
type ChatRequest struct {
	// Model is accepted for wire compatibility; the gateway's client is
	// bound to one model at startup and ignores per-request overrides.
	Model string `json:"model"`

	// Messages contains the conversation history.
	Messages []ChatMessage `json:"messages"`

	// Temperature is accepted for wire compatibility, not applied.
	Temperature *float64 `json:"temperature,omitempty"`

	// MaxTokens is accepted for wire compatibility, not applied.
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Stream is rejected; the gateway only answers synchronously.
	Stream bool `json:"stream,omitempty"`
}

// ChatMessage represents a single message in the conversation.
type ChatMessage struct {
	// Role is one of: "system", "user", "assistant".
	Role string `json:"role"`

	// Content is the message text content.
	Content string `json:"content"`
}

// ChatResponse represents an OpenAI-style chat completion response.
type ChatResponse struct {
	// ID is the unique identifier for this completion.
	ID string `json:"id"`

	// Object is always "chat.completion".
	Object string `json:"object"`

	// Created is the Unix timestamp of when the completion was created.
	Created int64 `json:"created"`

	// Model is the model the gateway's client is bound to.
	Model string `json:"model"`

	// Choices contains the generated completion.
	Choices []ChatChoice `json:"choices"`
}

// ChatChoice represents a single completion choice.
type ChatChoice struct {
	// Index is the position of this choice in the list.
	Index int `json:"index"`

	// Message contains the generated message.
	Message ChatMessage `json:"message"`

	// FinishReason indicates why the model stopped generating.
	FinishReason string `json:"finish_reason"`
}

// ModelEntry is one element of the /v1/models listing.
type ModelEntry struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	OwnedBy string `json:"owned_by"`
}
