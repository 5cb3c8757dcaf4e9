// Package adapter provides implementations for the supported LLM backends.
// It abstracts each provider's API behind a common chat-completion interface.
package adapter

import (
	"context"
)

// ChatProvider defines the interface for backend adapters.
// All provider implementations must satisfy this interface.
type ChatProvider interface {
	// ChatCompletion performs one chat completion request and returns the
	// generated text. Implementations must forward the messages in the
	// order given and must not retry on failure.
	ChatCompletion(ctx context.Context, req Request) (string, error)

	// Name returns the provider's identifier string.
	Name() string
}

// Request is the normalized completion request handed to an adapter.
type Request struct {
	// Model is the backend-specific model identifier.
	Model string

	// Messages is the conversation in order. May be empty.
	Messages []Message

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens limits the number of generated tokens.
	MaxTokens int

	// KeepAlive is the Ollama model-retention duration (e.g. "5m").
	// Ignored by the cloud adapters.
	KeepAlive string
}

// Message is a single conversation entry in normalized form.
type Message struct {
	Role    string
	Content string
}
