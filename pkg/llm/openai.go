package llm

import (
	"context"
	"fmt"

	"radar/internal/model"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient talks to any OpenAI-compatible chat-completion endpoint. It
// serves both the research call and the editor call, each with its own model.
type OpenAIClient struct {
	client     *openai.Client
	factsModel openai.ChatModel
	draftModel openai.ChatModel
}

func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	factsModel := cfg.FactsModel
	if factsModel == "" {
		factsModel = DefaultFactsModel
	}
	draftModel := cfg.DraftModel
	if draftModel == "" {
		draftModel = DefaultDraftModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	)

	return &OpenAIClient{
		client:     &client,
		factsModel: openai.ChatModel(factsModel),
		draftModel: openai.ChatModel(draftModel),
	}, nil
}

func (c *OpenAIClient) FetchFacts(ctx context.Context, headline string) (string, error) {
	userPrompt := fmt.Sprintf(factsUserPrompt, headline)

	content, err := c.complete(ctx, c.factsModel, factsSystemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("fetch facts: %w", err)
	}
	return content, nil
}

func (c *OpenAIClient) GenerateDraft(ctx context.Context, event model.Event, facts *string) (model.Draft, error) {
	eventJSON, err := buildDraftContext(event, facts)
	if err != nil {
		return model.Draft{}, err
	}

	content, err := c.complete(ctx, c.draftModel, draftSystemPrompt, fmt.Sprintf(draftUserPrompt, eventJSON))
	if err != nil {
		return model.Draft{}, fmt.Errorf("generate draft: %w", err)
	}

	return ParseDraft(content), nil
}

func (c *OpenAIClient) ModelName() string {
	return string(c.draftModel)
}

func (c *OpenAIClient) FactsModelName() string {
	return string(c.factsModel)
}

func (c *OpenAIClient) complete(ctx context.Context, chatModel openai.ChatModel, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
