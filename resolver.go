package llmclient

import (
	"github.com/dgaida/llm-client/credentials"
)

// resolve deterministically chooses the backend, model and effective
// parameters from the supplied options and the assembled credential store.
//
// Backend selection:
//  1. An explicit backend always wins, matched case-insensitively against
//     the closed set. An unknown identifier fails with
//     InvalidConfigurationError; there is no silent fallback.
//  2. Otherwise selection is credential-driven with fixed precedence:
//     OpenAI key present -> openai; else Groq key present -> groq;
//     else -> ollama.
//
// The model name passes through verbatim when given; otherwise the backend's
// fixed default applies. Temperature, max tokens and keep-alive pass through
// unchanged with no clamping.
func resolve(opts clientOptions, creds credentials.Store) (ClientConfig, error) {
	var backend Backend

	if opts.backend != "" {
		parsed, err := ParseBackend(opts.backend)
		if err != nil {
			return ClientConfig{}, err
		}
		backend = parsed
	} else {
		switch {
		case creds.OpenAIKey != "":
			backend = BackendOpenAI
		case creds.GroqKey != "":
			backend = BackendGroq
		default:
			backend = BackendOllama
		}
	}

	model := opts.model
	if model == "" {
		model = backend.DefaultModel()
	}

	cfg := ClientConfig{
		Backend:     backend,
		Model:       model,
		Temperature: opts.temperature,
		MaxTokens:   opts.maxTokens,
		KeepAlive:   opts.keepAlive,
	}

	// Exactly one credential is attached, matching the backend. The local
	// daemon carries none. An explicit cloud backend without a credential
	// is allowed here; the invoker reports it as unavailable at call time.
	switch backend {
	case BackendOpenAI:
		cfg.Credential = creds.OpenAIKey
	case BackendGroq:
		cfg.Credential = creds.GroqKey
	}

	return cfg, nil
}
