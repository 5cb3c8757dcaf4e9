// Package adapter provides implementations for the supported LLM backends.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultOllamaBaseURL is the default Ollama daemon endpoint.
	DefaultOllamaBaseURL = "http://localhost:11434"

	// DefaultOllamaTimeout is the default HTTP client timeout. Local
	// generation can be slow on small machines, so it is generous.
	DefaultOllamaTimeout = 120 * time.Second
)

// Fixed sampling parameters sent with every Ollama call, tuned for short
// deterministic answers from small local models.
const (
	ollamaRepeatPenalty = 1.2
	ollamaTopK          = 10
	ollamaTopP          = 0.5
)

// OllamaAdapter implements ChatProvider for a locally running Ollama daemon.
// The daemon has no API key; it is reached over plain HTTP.
type OllamaAdapter struct {
	baseURL    string
	httpClient *http.Client
}

// OllamaOption is a functional option for configuring OllamaAdapter.
type OllamaOption func(*OllamaAdapter)

// WithOllamaBaseURL sets a custom daemon address (e.g. from OLLAMA_HOST).
func WithOllamaBaseURL(url string) OllamaOption {
	return func(a *OllamaAdapter) {
		a.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithOllamaHTTPClient sets a custom HTTP client.
func WithOllamaHTTPClient(client *http.Client) OllamaOption {
	return func(a *OllamaAdapter) {
		a.httpClient = client
	}
}

// WithOllamaTimeout sets the HTTP client timeout.
func WithOllamaTimeout(timeout time.Duration) OllamaOption {
	return func(a *OllamaAdapter) {
		a.httpClient.Timeout = timeout
	}
}

// NewOllama creates a new OllamaAdapter.
func NewOllama(opts ...OllamaOption) *OllamaAdapter {
	a := &OllamaAdapter{
		baseURL: DefaultOllamaBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultOllamaTimeout,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Name returns the provider identifier.
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// ChatCompletion performs a chat completion against the daemon's /api/chat
// endpoint. Streaming is disabled; the call returns the complete response
// synchronously. The keep-alive duration controls how long the daemon keeps
// the model loaded between calls.
func (a *OllamaAdapter) ChatCompletion(ctx context.Context, req Request) (string, error) {
	ollamaReq := a.mapToOllamaRequest(req)

	body, err := json.Marshal(ollamaReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	url := a.baseURL + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute ollama request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ollama response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ollamaErr OllamaErrorResponse
		if err := json.Unmarshal(respBody, &ollamaErr); err == nil && ollamaErr.Error != "" {
			return "", fmt.Errorf("ollama API error [%d]: %s", resp.StatusCode, ollamaErr.Error)
		}
		return "", fmt.Errorf("ollama API error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var ollamaResp OllamaResponse
	if err := json.Unmarshal(respBody, &ollamaResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal ollama response: %w", err)
	}

	return ollamaResp.Message.Content, nil
}

// mapToOllamaRequest converts a normalized request to the daemon's wire
// format, attaching the fixed sampling constants.
func (a *OllamaAdapter) mapToOllamaRequest(req Request) OllamaRequest {
	messages := make([]OllamaMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = OllamaMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	return OllamaRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   false,
		Options: OllamaOptions{
			Temperature:   req.Temperature,
			NumPredict:    req.MaxTokens,
			RepeatPenalty: ollamaRepeatPenalty,
			TopK:          ollamaTopK,
			TopP:          ollamaTopP,
		},
		KeepAlive: req.KeepAlive,
	}
}

// ============================================================================
// Ollama API Types
// ============================================================================

// OllamaRequest represents an Ollama /api/chat request.
type OllamaRequest struct {
	Model     string          `json:"model"`
	Messages  []OllamaMessage `json:"messages"`
	Stream    bool            `json:"stream"`
	Options   OllamaOptions   `json:"options"`
	KeepAlive string          `json:"keep_alive,omitempty"`
}

// OllamaMessage represents a single chat message in Ollama format.
type OllamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OllamaOptions contains the model sampling parameters.
type OllamaOptions struct {
	Temperature   float64 `json:"temperature"`
	NumPredict    int     `json:"num_predict"`
	RepeatPenalty float64 `json:"repeat_penalty"`
	TopK          int     `json:"top_k"`
	TopP          float64 `json:"top_p"`
}

// OllamaResponse represents an Ollama /api/chat response envelope.
type OllamaResponse struct {
	Model     string        `json:"model"`
	CreatedAt string        `json:"created_at"`
	Message   OllamaMessage `json:"message"`
	Done      bool          `json:"done"`
}

// OllamaErrorResponse represents an error response from the daemon.
type OllamaErrorResponse struct {
	Error string `json:"error"`
}
