package llm

import (
	"context"
	"errors"
	"time"

	"radar/internal/model"
)

const (
	DefaultBaseURL    = "https://api.vsegpt.ru/v1"
	DefaultFactsModel = "perplexity/latest-large-online"
	DefaultDraftModel = "openai/gpt-4.1"
	DefaultTimeout    = 60 * time.Second

	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var (
	ErrMissingAPIKey = errors.New("llm: api key is required")
	ErrEmptyResponse = errors.New("llm: response has no message content")
)

type Config struct {
	APIKey     string
	BaseURL    string
	FactsModel string
	DraftModel string
	Timeout    time.Duration
}

type FactRetriever interface {
	FetchFacts(ctx context.Context, headline string) (string, error)
}

// Drafter turns an event and its retrieved facts into a post draft. A model
// answer that cannot be decoded is returned as a failed Draft, not an error.
type Drafter interface {
	GenerateDraft(ctx context.Context, event model.Event, facts *string) (model.Draft, error)
	ModelName() string
}

// NewDrafter picks the draft provider. The OpenAI-compatible client is used
// unless provider is "anthropic".
func NewDrafter(provider string, openAIClient *OpenAIClient, anthropicCfg Config) (Drafter, error) {
	if provider == ProviderAnthropic {
		client, err := NewAnthropicClient(anthropicCfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return openAIClient, nil
}
