package llmclient

import (
	"github.com/dgaida/llm-client/adapter"
)

// Defaults applied when an option is not supplied.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 512
	DefaultKeepAlive   = "5m"
	DefaultSecretsPath = "secrets.env"
)

// clientOptions collects the construction parameters before resolution.
type clientOptions struct {
	backend     string
	model       string
	temperature float64
	maxTokens   int
	keepAlive   string
	secretsPath string
	provider    adapter.ChatProvider
}

// Option is a functional option for configuring a Client.
type Option func(*clientOptions)

// WithBackend forces a specific backend ("openai", "groq" or "ollama",
// case-insensitive) instead of auto-resolving from available credentials.
// The explicit choice wins even when the matching credential is absent; the
// missing credential is then detected at call time, not at construction.
func WithBackend(backend string) Option {
	return func(o *clientOptions) {
		o.backend = backend
	}
}

// WithModel sets the model name, used verbatim for any backend. When not
// supplied, the backend's fixed default model applies.
func WithModel(model string) Option {
	return func(o *clientOptions) {
		o.model = model
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0). The value is
// passed through unvalidated; out-of-range values are the caller's
// responsibility. Default: 0.7.
func WithTemperature(temperature float64) Option {
	return func(o *clientOptions) {
		o.temperature = temperature
	}
}

// WithMaxTokens sets the maximum number of tokens to generate. Default: 512.
func WithMaxTokens(maxTokens int) Option {
	return func(o *clientOptions) {
		o.maxTokens = maxTokens
	}
}

// WithKeepAlive sets how long the Ollama daemon keeps the model loaded
// between calls (e.g. "5m", "1h"). Ignored by the cloud backends.
func WithKeepAlive(keepAlive string) Option {
	return func(o *clientOptions) {
		o.keepAlive = keepAlive
	}
}

// WithSecretsPath sets the path of the optional secrets file (line-delimited
// KEY=VALUE). A missing file is not an error. Default: "secrets.env".
func WithSecretsPath(path string) Option {
	return func(o *clientOptions) {
		o.secretsPath = path
	}
}

// WithProvider injects a pre-built provider, bypassing the construction of
// the backend's own client. Intended for tests and custom transports.
func WithProvider(p adapter.ChatProvider) Option {
	return func(o *clientOptions) {
		o.provider = p
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() clientOptions {
	return clientOptions{
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		keepAlive:   DefaultKeepAlive,
		secretsPath: DefaultSecretsPath,
	}
}
