package openai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// Config configures the OpenAI completion client.
type Config struct {
	// APIKey is the OpenAI API key. Falls back to OPENAI_API_KEY when empty.
	APIKey string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string
}

// Client generates completions through the OpenAI chat API.
type Client struct {
	llm *lcopenai.LLM
}

// New creates a new OpenAI completion client.
func New(cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	opts := []lcopenai.Option{lcopenai.WithModel(cfg.Model)}
	if cfg.APIKey != "" {
		opts = append(opts, lcopenai.WithToken(cfg.APIKey))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &Client{llm: llm}, nil
}

// Generate produces a completion for the conversation.
func (c *Client) Generate(ctx context.Context, system string, messages []core.Message) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages)+1)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, system))

	for _, msg := range messages {
		switch msg.Role {
		case core.RoleAssistant:
			content = append(content, llms.TextParts(llms.ChatMessageTypeAI, msg.Content))
		default:
			content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, msg.Content))
		}
	}

	resp, err := c.llm.GenerateContent(ctx, content)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai API error: no choices returned")
	}
	return resp.Choices[0].Content, nil
}
