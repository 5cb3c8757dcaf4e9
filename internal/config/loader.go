// Package config provides configuration management for the gateway binary.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "LLM_GATEWAY"
)

// Load loads the gateway configuration.
// Priority order (highest to lowest):
//  1. Environment variables (prefixed with LLM_GATEWAY_)
//  2. config.yaml (missing file is tolerated)
//  3. Default values
//
// The LLM credentials themselves are NOT read here; the unified client
// assembles its own credential store from OPENAI_API_KEY / GROQ_API_KEY and
// the secrets file.
func Load(configPath string) (*Configuration, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.llm-gateway")
	}

	// Enable environment variable override
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &ConfigError{Op: "read", Err: err}
		}
		// No config file is fine; env vars and defaults apply.
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Op: "unmarshal", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. The client defaults mirror
// the unified client's own documented defaults.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 120)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Client defaults
	v.SetDefault("client.backend", "")
	v.SetDefault("client.model", "")
	v.SetDefault("client.temperature", 0.7)
	v.SetDefault("client.max_tokens", 512)
	v.SetDefault("client.keep_alive", "5m")
	v.SetDefault("client.secrets_path", "secrets.env")

	// Cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl_seconds", 300)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
