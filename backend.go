// Package llmclient provides a unified client for chat completions across
// multiple LLM backends (OpenAI, Groq, and a local Ollama daemon).
//
// The client detects which API is available based on the credentials found in
// the environment (optionally loaded from a secrets.env file) and exposes a
// single Complete method regardless of the backend that was chosen.
package llmclient

import (
	"strings"
)

// Backend identifies the LLM execution target a client is bound to.
type Backend string

const (
	// BackendOpenAI routes completions to the OpenAI API.
	BackendOpenAI Backend = "openai"

	// BackendGroq routes completions to the Groq API.
	BackendGroq Backend = "groq"

	// BackendOllama routes completions to a locally running Ollama daemon.
	BackendOllama Backend = "ollama"
)

// Default models used when no explicit model name is supplied.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGroqModel   = "moonshotai/kimi-k2-instruct-0905"
	DefaultOllamaModel = "llama3.2:1b"
)

// Backends returns the closed set of supported backends.
func Backends() []Backend {
	return []Backend{BackendOpenAI, BackendGroq, BackendOllama}
}

// ParseBackend matches a backend identifier case-insensitively against the
// known set. An unrecognized value yields an InvalidConfigurationError naming
// the offending value and the valid identifiers.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(s)) {
	case BackendOpenAI:
		return BackendOpenAI, nil
	case BackendGroq:
		return BackendGroq, nil
	case BackendOllama:
		return BackendOllama, nil
	default:
		return "", &InvalidConfigurationError{
			Value:   s,
			Allowed: backendNames(),
		}
	}
}

// IsValid reports whether the backend belongs to the closed set.
func (b Backend) IsValid() bool {
	switch b {
	case BackendOpenAI, BackendGroq, BackendOllama:
		return true
	default:
		return false
	}
}

// DefaultModel returns the fixed default model for the backend.
func (b Backend) DefaultModel() string {
	switch b {
	case BackendOpenAI:
		return DefaultOpenAIModel
	case BackendGroq:
		return DefaultGroqModel
	case BackendOllama:
		return DefaultOllamaModel
	default:
		return ""
	}
}

// String returns the backend identifier.
func (b Backend) String() string {
	return string(b)
}

// backendNames returns the valid identifiers for error messages.
func backendNames() []string {
	names := make([]string, 0, 3)
	for _, b := range Backends() {
		names = append(names, string(b))
	}
	return names
}
