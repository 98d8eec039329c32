package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// newTestServer fakes the chat completions endpoint and captures the
// request body.
func newTestServer(t *testing.T, answer string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var captured map[string]any

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": answer}},
			},
			"usage": map[string]any{"total_tokens": 42},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, &captured
}

// TestNew_RequiresAPIKey tests construction fails without a key.
func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
}

// TestGenerator_Generate tests message assembly and answer extraction
// against a fake backend.
func TestGenerator_Generate(t *testing.T) {
	server, captured := newTestServer(t, "  Box breathing is a 4-4-4-4 pattern.  ")

	g, err := New(Config{APIKey: "test", BaseURL: server.URL, Model: "test-model"})
	require.NoError(t, err)

	history := []domain.ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	result, err := g.Generate(context.Background(), "SYSTEM PROMPT", "what is box breathing", history)
	require.NoError(t, err)

	assert.Equal(t, "Box breathing is a 4-4-4-4 pattern.", result.Answer)

	messages := (*captured)["messages"].([]any)
	require.Len(t, messages, 4)

	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "SYSTEM PROMPT", first["content"])

	second := messages[1].(map[string]any)
	assert.Equal(t, "user", second["role"])
	third := messages[2].(map[string]any)
	assert.Equal(t, "assistant", third["role"])

	last := messages[3].(map[string]any)
	assert.Equal(t, "user", last["role"])
	assert.Equal(t, "what is box breathing", last["content"])

	assert.Equal(t, "test-model", (*captured)["model"])
}

// TestGenerator_Generate_TruncatesHistory tests only the conversation
// tail is forwarded.
func TestGenerator_Generate_TruncatesHistory(t *testing.T) {
	server, captured := newTestServer(t, "ok")

	g, err := New(Config{APIKey: "test", BaseURL: server.URL})
	require.NoError(t, err)

	history := make([]domain.ChatTurn, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, domain.ChatTurn{Role: "user", Content: "turn"})
	}

	_, err = g.Generate(context.Background(), "sys", "q", history)
	require.NoError(t, err)

	// System + truncated history + query.
	messages := (*captured)["messages"].([]any)
	assert.Len(t, messages, maxHistoryTurns+2)
}

// TestGenerator_ModelName tests the default model is applied.
func TestGenerator_ModelName(t *testing.T) {
	g, err := New(Config{APIKey: "test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, g.ModelName())
}
