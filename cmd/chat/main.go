// Package main is a small command-line front end for the unified client.
// It resolves a backend, sends one prompt, and prints the answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	llmclient "github.com/dgaida/llm-client"
	"github.com/dgaida/llm-client/internal/security"
	"github.com/dgaida/llm-client/internal/ui"
)

func main() {
	var (
		backend     = flag.String("backend", "", "backend to use: openai, groq, ollama (default: auto-detect)")
		model       = flag.String("model", "", "model name (default: backend default)")
		temperature = flag.Float64("temperature", llmclient.DefaultTemperature, "sampling temperature")
		maxTokens   = flag.Int("max-tokens", llmclient.DefaultMaxTokens, "maximum tokens to generate")
		keepAlive   = flag.String("keep-alive", llmclient.DefaultKeepAlive, "ollama model keep-alive duration")
		secrets     = flag.String("secrets", llmclient.DefaultSecretsPath, "path to the secrets file")
		system      = flag.String("system", "", "optional system prompt")
		timeout     = flag.Duration("timeout", 2*time.Minute, "request timeout")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := setupLogger(*verbose)

	prompt := flag.Arg(0)
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: chat [flags] \"your prompt\"")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := []llmclient.Option{
		llmclient.WithTemperature(*temperature),
		llmclient.WithMaxTokens(*maxTokens),
		llmclient.WithKeepAlive(*keepAlive),
		llmclient.WithSecretsPath(*secrets),
	}
	if *backend != "" {
		opts = append(opts, llmclient.WithBackend(*backend))
	}
	if *model != "" {
		opts = append(opts, llmclient.WithModel(*model))
	}

	client, err := llmclient.New(opts...)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	cfg := client.Config()
	ui.PrintResolved(cfg.Backend.String(), cfg.Model)
	logger.Debug("client resolved",
		slog.String("backend", cfg.Backend.String()),
		slog.String("model", cfg.Model),
		slog.Float64("temperature", cfg.Temperature),
		slog.Int("max_tokens", cfg.MaxTokens),
	)

	messages := []llmclient.Message{}
	if *system != "" {
		messages = append(messages, llmclient.System(*system))
	}
	messages = append(messages, llmclient.User(prompt))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	answer, err := client.Complete(ctx, messages)
	if err != nil {
		if llmclient.IsBackendUnavailable(err) {
			ui.PrintUnavailable(cfg.Backend.String(), err.Error())
		} else {
			ui.PrintError(err.Error())
		}
		os.Exit(1)
	}

	ui.PrintCompletion(cfg.Backend.String(), time.Since(start))
	fmt.Println(answer)
}

// setupLogger creates a text logger with secret redaction for CLI use.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(security.NewRedactedHandler(inner))
	slog.SetDefault(logger)

	return logger
}
