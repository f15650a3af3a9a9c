package openai

import (
	"context"
	"fmt"

	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

const defaultModel = "text-embedding-3-small"

// Config configures the OpenAI embedder.
type Config struct {
	// APIKey is the OpenAI API key. Falls back to OPENAI_API_KEY when empty.
	APIKey string

	// Model is the embedding model (default: text-embedding-3-small).
	Model string

	// Dimensions is the embedding vector size (default: 1536).
	Dimensions int
}

// Embedder generates embeddings through the OpenAI embeddings API.
type Embedder struct {
	llm        *lcopenai.LLM
	dimensions int
}

// New creates a new OpenAI embedder.
func New(cfg Config) (*Embedder, error) {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = 1536
	}

	opts := []lcopenai.Option{lcopenai.WithEmbeddingModel(cfg.Model)}
	if cfg.APIKey != "" {
		opts = append(opts, lcopenai.WithToken(cfg.APIKey))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &Embedder{llm: llm, dimensions: cfg.Dimensions}, nil
}

// Embed converts a single text to an embedding vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.llm.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("openai embed: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("openai embed: no embeddings returned")
	}
	return vectors[0], nil
}

// Dimensions returns the embedding vector size.
func (e *Embedder) Dimensions() int {
	return e.dimensions
}
