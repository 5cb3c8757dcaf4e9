package llmclient

// ClientConfig is the resolved, immutable configuration held by a client
// instance. A new backend choice requires a new client; a ClientConfig is
// never mutated after construction.
type ClientConfig struct {
	// Backend is the execution target selected at construction.
	Backend Backend

	// Model is the backend-specific model identifier.
	Model string

	// Temperature is the sampling temperature (0.0 to 2.0, unvalidated).
	Temperature float64

	// MaxTokens limits the number of generated tokens.
	MaxTokens int

	// KeepAlive controls how long the Ollama daemon retains the model in
	// memory between calls. Meaningful only for BackendOllama.
	KeepAlive string

	// Credential is the API key for the cloud backends. Empty for
	// BackendOllama and when the matching environment key was absent.
	Credential string
}
