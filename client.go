package llmclient

import (
	"context"
	"fmt"

	"github.com/dgaida/llm-client/adapter"
	"github.com/dgaida/llm-client/credentials"
)

// Client is a unified chat-completion client bound to exactly one backend.
//
// The backend, model and parameters are resolved once at construction and
// never change. Complete may be called concurrently from multiple goroutines;
// there is no shared mutable state between calls.
type Client struct {
	config   ClientConfig
	provider adapter.ChatProvider
}

// New constructs a Client.
//
// Construction assembles the credential store once (process environment,
// optional secrets file, optional hosted-runtime fallback), resolves the
// backend and model, and eagerly builds the provider client for the resolved
// backend. A cloud backend without its credential leaves the provider unset;
// Complete then fails with BackendUnavailableError before any network call.
func New(opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	creds := credentials.Load(options.secretsPath)

	cfg, err := resolve(options, creds)
	if err != nil {
		return nil, err
	}

	c := &Client{config: cfg}

	if options.provider != nil {
		c.provider = options.provider
		return c, nil
	}

	switch cfg.Backend {
	case BackendOpenAI:
		if cfg.Credential != "" {
			c.provider = adapter.NewOpenAI(cfg.Credential)
		}
	case BackendGroq:
		if cfg.Credential != "" {
			c.provider = adapter.NewOpenAI(cfg.Credential,
				adapter.WithOpenAIBaseURL(adapter.GroqBaseURL),
				adapter.WithOpenAIName("groq"),
			)
		}
	case BackendOllama:
		var ollamaOpts []adapter.OllamaOption
		if creds.OllamaHost != "" {
			ollamaOpts = append(ollamaOpts, adapter.WithOllamaBaseURL(creds.OllamaHost))
		}
		c.provider = adapter.NewOllama(ollamaOpts...)
	}

	return c, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Available reports whether the provider client for the resolved backend was
// constructed. When false, Complete fails without attempting any network
// call.
func (c *Client) Available() bool {
	return c.provider != nil
}

// Complete executes one chat completion against the resolved backend and
// returns the generated text.
//
// The message order is forwarded to the backend verbatim. An empty message
// slice is valid input and still issues a call. Failures surface as one of
// the three error kinds: InvalidConfigurationError (corrupted backend value),
// BackendUnavailableError (provider client never constructed, checked before
// any I/O) or BackendError (the remote call itself failed; the original
// error is preserved, not swallowed). No retry and no fallback to another
// backend is performed.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if !c.config.Backend.IsValid() {
		return "", &InvalidConfigurationError{
			Value:   string(c.config.Backend),
			Allowed: backendNames(),
		}
	}

	if c.provider == nil {
		return "", &BackendUnavailableError{
			Backend: c.config.Backend,
			Reason:  "provider client was not constructed (missing credential?)",
		}
	}

	req := adapter.Request{
		Model:       c.config.Model,
		Messages:    make([]adapter.Message, len(messages)),
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		KeepAlive:   c.config.KeepAlive,
	}
	for i, m := range messages {
		req.Messages[i] = adapter.Message{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}

	content, err := c.provider.ChatCompletion(ctx, req)
	if err != nil {
		return "", &BackendError{Backend: c.config.Backend, Err: err}
	}

	return content, nil
}

// String returns a diagnostic representation exposing the chosen backend,
// model and temperature. For logging and debugging only.
func (c *Client) String() string {
	return fmt.Sprintf("LLMClient(api=%s, model=%s, temperature=%g)",
		c.config.Backend, c.config.Model, c.config.Temperature)
}
