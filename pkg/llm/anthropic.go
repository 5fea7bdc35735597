package llm

import (
	"context"
	"fmt"

	"radar/internal/model"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = "claude-haiku-4-5"

// AnthropicClient is an alternative Drafter. Facts are still retrieved from
// the research endpoint.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	draftModel := cfg.DraftModel
	if draftModel == "" {
		draftModel = DefaultAnthropicModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client: &client,
		model:  anthropic.Model(draftModel),
	}, nil
}

func (c *AnthropicClient) GenerateDraft(ctx context.Context, event model.Event, facts *string) (model.Draft, error) {
	eventJSON, err := buildDraftContext(event, facts)
	if err != nil {
		return model.Draft{}, err
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: draftSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(draftUserPrompt, eventJSON))),
		},
	})
	if err != nil {
		return model.Draft{}, fmt.Errorf("generate draft: anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return model.Draft{}, fmt.Errorf("generate draft: %w", ErrEmptyResponse)
	}

	return ParseDraft(resp.Content[0].Text), nil
}

func (c *AnthropicClient) ModelName() string {
	return string(c.model)
}
