package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	llmclient "github.com/dgaida/llm-client"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(complete completeFunc, available bool) *ChatHandler {
	return &ChatHandler{
		client:    complete,
		backend:   "ollama",
		model:     "llama3.2:1b",
		available: available,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestRouter(h *ChatHandler) *gin.Engine {
	router := gin.New()
	router.POST("/v1/chat/completions", h.HandleChatCompletion)
	router.GET("/v1/models", h.HandleModels)
	router.GET("/health", h.HandleHealth)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleChatCompletion_Success(t *testing.T) {
	var gotMessages []llmclient.Message
	h := newTestHandler(func(c *gin.Context, messages []llmclient.Message) (string, error) {
		gotMessages = messages
		return "The capital of France is Paris.", nil
	}, true)
	router := newTestRouter(h)

	rec := postChat(t, router, `{
		"messages": [
			{"role": "system", "content": "You are terse."},
			{"role": "user", "content": "Capital of France?"}
		]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Object != "chat.completion" {
		t.Errorf("object = %q, want %q", resp.Object, "chat.completion")
	}
	if resp.Model != "llama3.2:1b" {
		t.Errorf("model = %q, want %q", resp.Model, "llama3.2:1b")
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("len(choices) = %d, want 1", len(resp.Choices))
	}
	choice := resp.Choices[0]
	if choice.Message.Role != "assistant" {
		t.Errorf("role = %q, want %q", choice.Message.Role, "assistant")
	}
	if choice.Message.Content != "The capital of France is Paris." {
		t.Errorf("content = %q", choice.Message.Content)
	}
	if choice.FinishReason != "stop" {
		t.Errorf("finish_reason = %q, want %q", choice.FinishReason, "stop")
	}

	if len(gotMessages) != 2 {
		t.Fatalf("forwarded %d messages, want 2", len(gotMessages))
	}
	if gotMessages[0].Role != llmclient.RoleSystem || gotMessages[1].Role != llmclient.RoleUser {
		t.Errorf("message roles not preserved: %+v", gotMessages)
	}
}

func TestHandleChatCompletion_EmptyMessagesForwarded(t *testing.T) {
	called := false
	h := newTestHandler(func(c *gin.Context, messages []llmclient.Message) (string, error) {
		called = true
		if messages == nil {
			t.Error("messages = nil, want empty slice")
		}
		if len(messages) != 0 {
			t.Errorf("len(messages) = %d, want 0", len(messages))
		}
		return "ok", nil
	}, true)
	router := newTestRouter(h)

	rec := postChat(t, router, `{"messages": []}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("completion was not invoked for empty messages")
	}
}

func TestHandleChatCompletion_MalformedBody(t *testing.T) {
	h := newTestHandler(func(c *gin.Context, messages []llmclient.Message) (string, error) {
		t.Error("completion should not be invoked for malformed JSON")
		return "", nil
	}, true)
	router := newTestRouter(h)

	rec := postChat(t, router, `{"messages": [`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("invalid_request_error")) {
		t.Errorf("body missing error type: %s", rec.Body.String())
	}
}

func TestHandleChatCompletion_StreamRejected(t *testing.T) {
	h := newTestHandler(func(c *gin.Context, messages []llmclient.Message) (string, error) {
		t.Error("completion should not be invoked for streaming requests")
		return "", nil
	}, true)
	router := newTestRouter(h)

	rec := postChat(t, router, `{"messages": [{"role": "user", "content": "hi"}], "stream": true}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("streaming is not supported")) {
		t.Errorf("body missing stream rejection: %s", rec.Body.String())
	}
}

func TestHandleChatCompletion_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "backend unavailable maps to 503",
			err:        &llmclient.BackendUnavailableError{Backend: "openai", Reason: "no credential"},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid configuration maps to 500",
			err:        &llmclient.InvalidConfigurationError{Value: "grok"},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "backend error maps to 502",
			err:        &llmclient.BackendError{Backend: "ollama", Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unknown error maps to 502",
			err:        errors.New("something else"),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(func(c *gin.Context, messages []llmclient.Message) (string, error) {
				return "", tt.err
			}, true)
			router := newTestRouter(h)

			rec := postChat(t, router, `{"messages": [{"role": "user", "content": "hi"}]}`)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if _, ok := body["error"]; !ok {
				t.Error("error body missing \"error\" field")
			}
		})
	}
}

func TestHandleModels(t *testing.T) {
	h := newTestHandler(nil, true)
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Object string       `json:"object"`
		Data   []ModelEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Object != "list" {
		t.Errorf("object = %q, want %q", resp.Object, "list")
	}
	if len(resp.Data) != 3 {
		t.Fatalf("len(data) = %d, want 3", len(resp.Data))
	}

	wantOwners := map[string]string{
		"openai": "gpt-4o-mini",
		"groq":   "moonshotai/kimi-k2-instruct-0905",
		"ollama": "llama3.2:1b",
	}
	for _, entry := range resp.Data {
		want, ok := wantOwners[entry.OwnedBy]
		if !ok {
			t.Errorf("unexpected owner %q", entry.OwnedBy)
			continue
		}
		if entry.ID != want {
			t.Errorf("model for %s = %q, want %q", entry.OwnedBy, entry.ID, want)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		available  bool
		wantStatus string
	}{
		{"available backend reports healthy", true, "healthy"},
		{"unavailable backend reports degraded", false, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, tt.available)
			router := newTestRouter(h)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode health body: %v", err)
			}
			if body["status"] != tt.wantStatus {
				t.Errorf("status = %v, want %q", body["status"], tt.wantStatus)
			}
			if body["backend"] != "ollama" {
				t.Errorf("backend = %v, want %q", body["backend"], "ollama")
			}
		})
	}
}
