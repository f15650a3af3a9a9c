package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// Config configures the Claude completion client.
type Config struct {
	// APIKey is the Anthropic API key. Falls back to ANTHROPIC_API_KEY
	// when empty.
	APIKey string

	// Model is the Claude model to use.
	Model string

	// MaxTokens is the maximum response tokens (default: 4096).
	MaxTokens int64
}

// Client generates completions through the Anthropic Messages API.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// New creates a new Claude completion client.
func New(cfg Config) *Client {
	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Generate produces a completion for the conversation.
func (c *Client) Generate(ctx context.Context, system string, messages []core.Message) (string, error) {
	resp, err := c.client.Messages.New(ctx, c.params(system, messages))
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

// GenerateStream produces a completion, invoking callback with each text
// chunk as it arrives and once more with done=true at the end. The full
// response text is also returned.
func (c *Client) GenerateStream(ctx context.Context, system string, messages []core.Message, callback func(chunk string, done bool)) (string, error) {
	stream := c.client.Messages.NewStreaming(ctx, c.params(system, messages))
	defer stream.Close()

	var text string
	for stream.Next() {
		event := stream.Current()

		switch evt := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := evt.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				text += delta.Text
				callback(delta.Text, false)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	callback("", true)
	return text, nil
}

func (c *Client) params(system string, messages []core.Message) anthropic.MessageNewParams {
	apiMessages := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case core.RoleAssistant:
			apiMessages = append(apiMessages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			apiMessages = append(apiMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  apiMessages,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
	}
}
