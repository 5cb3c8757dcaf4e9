// Package main is the entry point for the llm-gateway server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	llmclient "github.com/dgaida/llm-client"
	"github.com/dgaida/llm-client/internal/config"
	"github.com/dgaida/llm-client/internal/handler"
	"github.com/dgaida/llm-client/internal/security"
	"github.com/dgaida/llm-client/internal/ui"
)

func main() {
	// =========================================================================
	// 1. Load configuration
	// =========================================================================
	configPath := os.Getenv("LLM_GATEWAY_CONFIG")

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// 2. Setup structured logger (JSON, with secret redaction)
	// =========================================================================
	logger := setupLogger(cfg.Logging)

	logger.Info("starting llm-gateway",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// =========================================================================
	// 3. Resolve the unified client once, at startup
	// =========================================================================
	opts := []llmclient.Option{
		llmclient.WithTemperature(cfg.Client.Temperature),
		llmclient.WithMaxTokens(cfg.Client.MaxTokens),
		llmclient.WithKeepAlive(cfg.Client.KeepAlive),
		llmclient.WithSecretsPath(cfg.Client.SecretsPath),
	}
	if cfg.Client.Backend != "" {
		opts = append(opts, llmclient.WithBackend(cfg.Client.Backend))
	}
	if cfg.Client.Model != "" {
		opts = append(opts, llmclient.WithModel(cfg.Client.Model))
	}

	client, err := llmclient.New(opts...)
	if err != nil {
		logger.Error("failed to initialize client", slog.String("error", err.Error()))
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	resolved := client.Config()
	logger.Info("backend resolved",
		slog.String("backend", resolved.Backend.String()),
		slog.String("model", resolved.Model),
		slog.Bool("available", client.Available()),
	)
	ui.PrintBanner(resolved.Backend.String(), resolved.Model)
	if !client.Available() {
		ui.PrintUnavailable(resolved.Backend.String(), "no provider client constructed")
	}

	// =========================================================================
	// 4. Create ChatHandler
	// =========================================================================
	chatHandler := handler.NewChatHandler(client, handler.WithLogger(logger))

	// =========================================================================
	// 5. Setup Gin router with middleware
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(handler.RecoveryMiddleware(logger))
	router.Use(handler.CORSMiddleware())
	router.Use(handler.StripAuthHeadersMiddleware())
	router.Use(handler.LoggingMiddleware(logger))

	if cfg.Cache.Enabled {
		cache := handler.NewResponseCache(
			handler.WithCacheTTL(time.Duration(cfg.Cache.TTLSeconds)*time.Second),
			handler.WithCacheLogger(logger),
		)
		router.Use(handler.CacheMiddleware(cache, logger))
		logger.Info("response cache enabled",
			slog.Int("ttl_seconds", cfg.Cache.TTLSeconds),
		)
	}

	// Register routes (OpenAI-compatible)
	router.POST("/v1/chat/completions", chatHandler.HandleChatCompletion)
	router.GET("/v1/models", chatHandler.HandleModels)
	router.GET("/health", chatHandler.HandleHealth)

	// Also support without /v1 prefix for compatibility
	router.POST("/chat/completions", chatHandler.HandleChatCompletion)

	// =========================================================================
	// 6. Start HTTP server with graceful shutdown
	// =========================================================================
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", addr))
		ui.PrintGatewayInfo(fmt.Sprintf("listening at http://%s", addr))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 7. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// setupLogger creates a structured JSON logger with secret redaction.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if cfg.Format == "text" {
		inner = slog.NewTextHandler(os.Stdout, opts)
	} else {
		inner = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(security.NewRedactedHandler(inner))
	slog.SetDefault(logger)

	return logger
}
