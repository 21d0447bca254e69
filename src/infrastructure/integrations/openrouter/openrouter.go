package openrouter

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-oss-120b:free"

	// Low temperature biases toward factual extraction; the token cap
	// bounds answer length.
	temperature = 0.3
	maxTokens   = 512
)

// Composer generates answers through an OpenAI-compatible chat-completion
// API. Construct once per process and share across requests.
type Composer struct {
	client *openai.Client
	model  string
}

func NewComposer(apiKey, baseURL, model string) *Composer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Composer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete sends the system prompt and user message and returns the model's
// answer.
func (c *Composer) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
