package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionRequest is the slice of the wire format these tests inspect.
type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":     "cmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	return NewOpenAIGateway(cfg, NoopObserver{})
}

func TestComplete_SendsRolesAndParams(t *testing.T) {
	var got completionRequest
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("the reply"))
	})

	reply, err := gw.Complete(context.Background(), []ChatMessage{
		{Role: RoleSystem, Content: "Be brief."},
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleAssistant, Content: "Hello"},
		{Role: RoleUser, Content: "Summarize"},
	})
	require.NoError(t, err)
	assert.Equal(t, "the reply", reply)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 1500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.001)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	assert.Equal(t, "Summarize", got.Messages[3].Content)
}

func TestComplete_NoChoices(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "cmpl-test", "choices": []any{}})
	})

	_, err := gw.Complete(context.Background(), []ChatMessage{{Role: RoleUser, Content: "Hi"}})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestComplete_ObserverSeesFailure(t *testing.T) {
	var events []CallEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	// The SDK retries transient failures; keep only the terminal event's shape.
	gw := NewOpenAIGateway(cfg, observerFunc(func(e CallEvent) { events = append(events, e) }))

	_, err := gw.Complete(context.Background(), []ChatMessage{{Role: RoleUser, Content: "Hi"}})
	require.Error(t, err)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, KindComplete, last.Kind)
	assert.False(t, last.Success)
	assert.NotEmpty(t, last.ErrorCode)
}

func TestTranscribe_PostsMultipartAudio(t *testing.T) {
	var gotPath, gotContentType string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"text": "spoken words"})
	})

	text, err := gw.Transcribe(context.Background(), bytes.Repeat([]byte{0x42}, 16))
	require.NoError(t, err)
	assert.Equal(t, "spoken words", text)
	assert.Equal(t, "/audio/transcriptions", gotPath)
	assert.Contains(t, gotContentType, "multipart/form-data")
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
