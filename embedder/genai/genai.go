package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-embedding-001"

// Config configures the Gemini embedder.
type Config struct {
	// APIKey is the Google AI API key.
	APIKey string

	// Model is the embedding model (default: gemini-embedding-001).
	Model string
}

// Embedder generates embeddings using Google's Gemini API.
type Embedder struct {
	client *genai.Client
	model  string
}

// New creates a new Gemini embedder.
func New(ctx context.Context, cfg Config) (*Embedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("genai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Embedder{client: client, model: cfg.Model}, nil
}

// Embed converts a single text to an embedding vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents,
		&genai.EmbedContentConfig{
			TaskType: "RETRIEVAL_DOCUMENT",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("genai embed: %w", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("genai embed: no embeddings returned")
	}

	return result.Embeddings[0].Values, nil
}

// Dimensions returns the embedding vector size.
// gemini-embedding-001 produces 768-dimensional vectors.
func (e *Embedder) Dimensions() int {
	return 768
}
