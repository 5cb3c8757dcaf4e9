// Package config provides configuration management for the gateway binary.
// It loads configuration from environment variables and config.yaml using Viper.
package config

import (
	"fmt"
	"strings"
)

// Configuration holds all gateway configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Client holds the settings passed to the unified LLM client.
	Client ClientConfig `json:"client" mapstructure:"client"`

	// Cache configuration
	Cache CacheConfig `json:"cache" mapstructure:"cache"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeoutSeconds is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeoutSeconds is the maximum duration before timing out writes of the response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeoutSeconds is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// ClientConfig holds the settings forwarded to the unified LLM client.
// Backend and model may be left empty to auto-resolve from credentials.
type ClientConfig struct {
	// Backend forces a specific backend (openai, groq, ollama). Optional.
	Backend string `json:"backend" mapstructure:"backend"`

	// Model is the model identifier. Optional; each backend has a default.
	Model string `json:"model" mapstructure:"model"`

	// Temperature is the sampling temperature (not clamped here).
	Temperature float64 `json:"temperature" mapstructure:"temperature"`

	// MaxTokens limits the number of generated tokens.
	MaxTokens int `json:"max_tokens" mapstructure:"max_tokens"`

	// KeepAlive is the Ollama model-retention duration.
	KeepAlive string `json:"keep_alive" mapstructure:"keep_alive"`

	// SecretsPath is the path of the optional secrets file.
	SecretsPath string `json:"secrets_path" mapstructure:"secrets_path"`
}

// CacheConfig holds the gateway response cache configuration.
// The cache lives in the gateway only; the core client never caches.
type CacheConfig struct {
	// Enabled switches the response cache on. Default: off.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// TTLSeconds is the time-to-live for cached responses.
	TTLSeconds int `json:"ttl_seconds" mapstructure:"ttl_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`
}

// Validate validates the configuration and returns an error if values are invalid.
func (c *Configuration) Validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	if c.Client.Backend != "" && !isKnownBackend(c.Client.Backend) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"client.backend '%s' is invalid, must be one of: openai, groq, ollama",
			c.Client.Backend,
		))
	}

	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		validationErrors = append(validationErrors, "cache.ttl_seconds must be positive when the cache is enabled")
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// isKnownBackend checks the backend identifier against the closed set.
// Matching is case-insensitive, like the client's own parser.
func isKnownBackend(backend string) bool {
	switch strings.ToLower(backend) {
	case "openai", "groq", "ollama":
		return true
	default:
		return false
	}
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
