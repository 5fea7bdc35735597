package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"radar/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestAnthropicGenerateDraft(t *testing.T) {
	var gotPath, gotModel string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotPath = r.URL.Path
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "msg_1",
			"type":  "message",
			"role":  "assistant",
			"model": body.Model,
			"content": []map[string]interface{}{
				{"type": "text", "text": "```json\n{\"headline\":\"H\",\"lead\":\"L\",\"bullets\":[],\"citation\":\"c\"}\n```"},
			},
			"stop_reason": "end_turn",
			"usage":       map[string]interface{}{"input_tokens": 10, "output_tokens": 20},
		})
	}))
	defer srv.Close()

	client, err := NewAnthropicClient(Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		DraftModel: "claude-test",
		Timeout:    5 * time.Second,
	})
	assert.Equal(t, nil, err)

	d, err := client.GenerateDraft(context.Background(), model.Event{Headline: "H"}, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "claude-test", gotModel)
	assert.Equal(t, "H", d.Headline)
	assert.Equal(t, "c", d.Citation)
	assert.Equal(t, "claude-test", client.ModelName())
}

func TestNewAnthropicClient_RequiresKey(t *testing.T) {
	_, err := NewAnthropicClient(Config{DraftModel: "claude-test"})

	assert.Equal(t, ErrMissingAPIKey, err)
}

func TestNewDrafter(t *testing.T) {
	openAIClient, err := NewOpenAIClient(Config{APIKey: "k", DraftModel: "editor-model"})
	assert.Equal(t, nil, err)

	d, err := NewDrafter(ProviderOpenAI, openAIClient, Config{})
	assert.Equal(t, nil, err)
	assert.Equal(t, "editor-model", d.ModelName())

	d, err = NewDrafter(ProviderAnthropic, openAIClient, Config{APIKey: "k", DraftModel: "claude-test"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "claude-test", d.ModelName())

	_, err = NewDrafter(ProviderAnthropic, openAIClient, Config{})
	assert.Equal(t, ErrMissingAPIKey, err)
}
