// Package handler provides the HTTP handlers for the completion gateway.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	llmclient "github.com/dgaida/llm-client"
)

// ChatHandler serves OpenAI-compatible chat completions backed by one
// resolved client instance. It performs exactly one call per request; there
// is no retry and no fallback to another backend.
type ChatHandler struct {
	client    completeFunc
	backend   string
	model     string
	available bool
	logger    *slog.Logger
}

// completeFunc is the call shape the handler dispatches to.
type completeFunc func(c *gin.Context, messages []llmclient.Message) (string, error)

// ChatHandlerOption is a functional option for configuring ChatHandler.
type ChatHandlerOption func(*ChatHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ChatHandlerOption {
	return func(h *ChatHandler) {
		h.logger = logger
	}
}

// NewChatHandler creates a ChatHandler around a resolved client.
func NewChatHandler(client *llmclient.Client, opts ...ChatHandlerOption) *ChatHandler {
	h := &ChatHandler{
		client: func(c *gin.Context, messages []llmclient.Message) (string, error) {
			return client.Complete(c.Request.Context(), messages)
		},
		backend:   client.Config().Backend.String(),
		model:     client.Config().Model,
		available: client.Available(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HandleChatCompletion handles POST /v1/chat/completions.
func (h *ChatHandler) HandleChatCompletion(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid_request_error", "Invalid request body: "+err.Error())
		return
	}

	if req.Stream {
		h.sendError(c, http.StatusBadRequest, "invalid_request_error", "streaming is not supported")
		return
	}

	if req.Model != "" && req.Model != h.model {
		h.logger.Debug("request model ignored",
			slog.String("requested", req.Model),
			slog.String("configured", h.model),
		)
	}

	// An empty messages array is valid input; it is forwarded as-is.
	messages := make([]llmclient.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = llmclient.Message{
			Role:    llmclient.Role(m.Role),
			Content: m.Content,
		}
	}

	c.Set("backend", h.backend)

	content, err := h.client(c, messages)
	if err != nil {
		h.logger.Error("completion failed",
			slog.String("backend", h.backend),
			slog.String("error", err.Error()),
		)

		switch {
		case llmclient.IsBackendUnavailable(err):
			h.sendError(c, http.StatusServiceUnavailable, "server_error", err.Error())
		case llmclient.IsInvalidConfiguration(err):
			h.sendError(c, http.StatusInternalServerError, "server_error", err.Error())
		default:
			h.sendError(c, http.StatusBadGateway, "server_error", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		ID:      fmt.Sprintf("chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   h.model,
		Choices: []ChatChoice{
			{
				Index: 0,
				Message: ChatMessage{
					Role:    "assistant",
					Content: content,
				},
				FinishReason: "stop",
			},
		},
	})
}

// HandleModels handles GET /v1/models.
// Returns the default model of each supported backend (OpenAI-compatible).
func (h *ChatHandler) HandleModels(c *gin.Context) {
	models := make([]ModelEntry, 0, 3)
	for _, b := range llmclient.Backends() {
		models = append(models, ModelEntry{
			ID:      b.DefaultModel(),
			Object:  "model",
			OwnedBy: b.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   models,
	})
}

// HandleHealth handles GET /health.
func (h *ChatHandler) HandleHealth(c *gin.Context) {
	status := "healthy"
	if !h.available {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"backend":   h.backend,
		"model":     h.model,
		"available": h.available,
	})
}

// sendError sends an error response in OpenAI-compatible format.
func (h *ChatHandler) sendError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"message": message,
			"type":    errType,
			"param":   nil,
			"code":    nil,
		},
	})
}
