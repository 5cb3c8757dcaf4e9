// Package adapter provides implementations for the supported LLM backends.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// GroqBaseURL is the OpenAI-compatible endpoint of the Groq API. Groq speaks
// the OpenAI chat-completion wire format, so the same adapter serves both
// backends with a different base URL.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAIAdapter implements ChatProvider on top of the OpenAI client library.
// It is used for the OpenAI backend and, with a base-URL override, for Groq.
type OpenAIAdapter struct {
	name       string
	baseURL    string
	httpClient *http.Client
	client     *openai.Client
}

// OpenAIOption is a functional option for configuring OpenAIAdapter.
type OpenAIOption func(*OpenAIAdapter)

// WithOpenAIBaseURL sets a custom base URL (e.g. the Groq endpoint).
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(a *OpenAIAdapter) {
		a.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithOpenAIName sets the provider identifier reported by Name.
func WithOpenAIName(name string) OpenAIOption {
	return func(a *OpenAIAdapter) {
		a.name = name
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(a *OpenAIAdapter) {
		a.httpClient = client
	}
}

// NewOpenAI creates a new OpenAIAdapter bound to the given API key.
func NewOpenAI(apiKey string, opts ...OpenAIOption) *OpenAIAdapter {
	a := &OpenAIAdapter{
		name: "openai",
	}

	for _, opt := range opts {
		opt(a)
	}

	cfg := openai.DefaultConfig(apiKey)
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.httpClient != nil {
		cfg.HTTPClient = a.httpClient
	}
	a.client = openai.NewClientWithConfig(cfg)

	return a
}

// Name returns the provider identifier ("openai" or "groq").
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// ChatCompletion performs a chat completion request and extracts the first
// choice's message content. Library and API errors are returned untouched so
// the caller can wrap them with backend context.
func (a *OpenAIAdapter) ChatCompletion(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no completion choices", a.name)
	}

	return resp.Choices[0].Message.Content, nil
}
