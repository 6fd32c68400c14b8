package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/socialpulse/pulse-agent/internal/domain"
)

// OpenAIClient implements domain.LLMClient on top of the OpenAI chat
// completion API. It is only constructed when an API key is configured
// and the mock client is explicitly disabled.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIClient(apiKey, model string, temperature float64) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key must be set")
	}
	if model == "" {
		model = openai.GPT4
	}

	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: float32(temperature),
	}, nil
}

// GenerateCopy implements domain.LLMClient using a single chat turn.
func (c *OpenAIClient) GenerateCopy(ctx context.Context, prompt string, voice domain.BrandVoice) (string, error) {
	system := fmt.Sprintf(
		"You write social media copy. Tone: %s. Style: %s. Brand values: %s.",
		voice.Tone, voice.Style, voice.Values,
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty completion")
	}

	return resp.Choices[0].Message.Content, nil
}
