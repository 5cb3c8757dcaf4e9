package llmclient

import (
	"testing"

	"github.com/dgaida/llm-client/credentials"
)

func TestResolve_CredentialPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		creds credentials.Store
		want  Backend
	}{
		{
			name:  "both cloud keys present picks openai",
			creds: credentials.Store{OpenAIKey: "sk-a", GroqKey: "gsk_b"},
			want:  BackendOpenAI,
		},
		{
			name:  "only openai key",
			creds: credentials.Store{OpenAIKey: "sk-a"},
			want:  BackendOpenAI,
		},
		{
			name:  "only groq key",
			creds: credentials.Store{GroqKey: "gsk_b"},
			want:  BackendGroq,
		},
		{
			name:  "no keys falls back to local daemon",
			creds: credentials.Store{},
			want:  BackendOllama,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := resolve(defaultOptions(), tt.creds)
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}
			if cfg.Backend != tt.want {
				t.Errorf("resolve() backend = %v, want %v", cfg.Backend, tt.want)
			}
		})
	}
}

func TestResolve_ExplicitBackendWins(t *testing.T) {
	// Explicit ollama with an OpenAI key present must still yield ollama.
	opts := defaultOptions()
	opts.backend = "ollama"

	cfg, err := resolve(opts, credentials.Store{OpenAIKey: "sk-a"})
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Backend != BackendOllama {
		t.Errorf("resolve() backend = %v, want %v", cfg.Backend, BackendOllama)
	}
	if cfg.Credential != "" {
		t.Errorf("resolve() credential = %q, want none for the local daemon", cfg.Credential)
	}
}

func TestResolve_ExplicitBackendWithoutCredential(t *testing.T) {
	// An explicit cloud backend without its key resolves anyway; the missing
	// credential is the invoker's problem, not the resolver's.
	opts := defaultOptions()
	opts.backend = "openai"

	cfg, err := resolve(opts, credentials.Store{})
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Backend != BackendOpenAI {
		t.Errorf("resolve() backend = %v, want %v", cfg.Backend, BackendOpenAI)
	}
	if cfg.Credential != "" {
		t.Errorf("resolve() credential = %q, want empty", cfg.Credential)
	}
}

func TestResolve_ExplicitBackendCaseInsensitive(t *testing.T) {
	opts := defaultOptions()
	opts.backend = "OLLAMA"

	cfg, err := resolve(opts, credentials.Store{OpenAIKey: "sk-a"})
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Backend != BackendOllama {
		t.Errorf("resolve() backend = %v, want %v", cfg.Backend, BackendOllama)
	}
}

func TestResolve_InvalidBackendRejected(t *testing.T) {
	opts := defaultOptions()
	opts.backend = "invalid_api"

	_, err := resolve(opts, credentials.Store{OpenAIKey: "sk-a"})
	if err == nil {
		t.Fatal("resolve() expected error for invalid backend")
	}
	if !IsInvalidConfiguration(err) {
		t.Errorf("resolve() error = %T, want InvalidConfigurationError", err)
	}
}

func TestResolve_DefaultModelTable(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"openai", DefaultOpenAIModel},
		{"groq", DefaultGroqModel},
		{"ollama", DefaultOllamaModel},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			opts := defaultOptions()
			opts.backend = tt.backend

			cfg, err := resolve(opts, credentials.Store{})
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}
			if cfg.Model != tt.want {
				t.Errorf("resolve() model = %q, want %q", cfg.Model, tt.want)
			}
		})
	}
}

func TestResolve_ExplicitModelPassthrough(t *testing.T) {
	for _, backend := range []string{"openai", "groq", "ollama"} {
		t.Run(backend, func(t *testing.T) {
			opts := defaultOptions()
			opts.backend = backend
			opts.model = "my-custom-model"

			cfg, err := resolve(opts, credentials.Store{})
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}
			if cfg.Model != "my-custom-model" {
				t.Errorf("resolve() model = %q, want verbatim passthrough", cfg.Model)
			}
		})
	}
}

func TestResolve_ParameterPassthrough(t *testing.T) {
	// No clamping: out-of-range temperature and unusual values pass through.
	opts := defaultOptions()
	opts.backend = "ollama"
	opts.temperature = 3.5
	opts.maxTokens = 2048
	opts.keepAlive = "10m"

	cfg, err := resolve(opts, credentials.Store{})
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Temperature != 3.5 {
		t.Errorf("resolve() temperature = %g, want 3.5", cfg.Temperature)
	}
	if cfg.MaxTokens != 2048 {
		t.Errorf("resolve() maxTokens = %d, want 2048", cfg.MaxTokens)
	}
	if cfg.KeepAlive != "10m" {
		t.Errorf("resolve() keepAlive = %q, want 10m", cfg.KeepAlive)
	}
}

func TestResolve_Defaults(t *testing.T) {
	// Scenario: OPENAI_API_KEY="sk-x", nothing else supplied.
	cfg, err := resolve(defaultOptions(), credentials.Store{OpenAIKey: "sk-x"})
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Backend != BackendOpenAI {
		t.Errorf("backend = %v, want openai", cfg.Backend)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("temperature = %g, want 0.7", cfg.Temperature)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("maxTokens = %d, want 512", cfg.MaxTokens)
	}
	if cfg.Credential != "sk-x" {
		t.Errorf("credential = %q, want sk-x", cfg.Credential)
	}
}

func TestResolve_CredentialMatchesBackend(t *testing.T) {
	creds := credentials.Store{OpenAIKey: "sk-a", GroqKey: "gsk_b"}

	opts := defaultOptions()
	opts.backend = "groq"
	cfg, err := resolve(opts, creds)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Credential != "gsk_b" {
		t.Errorf("credential = %q, want the groq key", cfg.Credential)
	}
}
