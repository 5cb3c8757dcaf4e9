// Package credentials assembles the credential store consulted by the
// backend resolver. The store is built exactly once per client construction
// and is never mutated afterwards; no ambient environment state is read
// mid-call.
package credentials

import (
	"os"

	"github.com/spf13/viper"
)

// Environment keys recognized by the store.
const (
	// EnvOpenAIKey holds the OpenAI API key.
	EnvOpenAIKey = "OPENAI_API_KEY"

	// EnvGroqKey holds the Groq API key.
	EnvGroqKey = "GROQ_API_KEY"

	// EnvOllamaHost optionally overrides the Ollama daemon address.
	EnvOllamaHost = "OLLAMA_HOST"
)

// Store holds the credentials available to a client instance. A zero field
// means the credential is absent, not merely empty.
type Store struct {
	// OpenAIKey is the OpenAI API key, if available.
	OpenAIKey string

	// GroqKey is the Groq API key, if available.
	GroqKey string

	// OllamaHost is the Ollama daemon address override, if set.
	OllamaHost string
}

// Load assembles a Store from three layered sources, highest priority first:
//
//  1. The process environment.
//  2. The optional secrets file at secretsPath (line-delimited KEY=VALUE).
//     A missing or unreadable file is not an error; it simply contributes
//     nothing.
//  3. A best-effort hosted-runtime secret accessor, consulted only for keys
//     still unset and only when the process runs inside such a runtime.
//     Its failure never raises.
func Load(secretsPath string) Store {
	s := Store{
		OpenAIKey:  os.Getenv(EnvOpenAIKey),
		GroqKey:    os.Getenv(EnvGroqKey),
		OllamaHost: os.Getenv(EnvOllamaHost),
	}

	if file := loadSecretsFile(secretsPath); file != nil {
		if s.OpenAIKey == "" {
			s.OpenAIKey = file.GetString(EnvOpenAIKey)
		}
		if s.GroqKey == "" {
			s.GroqKey = file.GetString(EnvGroqKey)
		}
		if s.OllamaHost == "" {
			s.OllamaHost = file.GetString(EnvOllamaHost)
		}
	}

	if hostedRuntimeActive() {
		if s.OpenAIKey == "" {
			s.OpenAIKey = runtimeSecret(EnvOpenAIKey)
		}
		if s.GroqKey == "" {
			s.GroqKey = runtimeSecret(EnvGroqKey)
		}
	}

	return s
}

// loadSecretsFile parses the secrets file in env format. Returns nil when the
// file is absent or unreadable; both cases are tolerated silently.
func loadSecretsFile(path string) *viper.Viper {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil
	}
	return v
}
