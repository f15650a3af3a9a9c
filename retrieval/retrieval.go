package retrieval

import (
	"context"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// Index is the vector retrieval backend interface.
// The chromem subpackage provides the embedded implementation.
type Index interface {
	// Add embeds and stores a batch of documents.
	Add(ctx context.Context, docs []core.Document) error

	// Search returns up to k documents most similar to the query,
	// most similar first. An empty index yields no results, not an error.
	Search(ctx context.Context, query string, k int) ([]core.Document, error)

	// Count returns the number of stored documents.
	Count() int

	// Close releases resources.
	Close() error
}

// Embedder converts text to vector embeddings.
// Implementations: mock (testing), onnx (local SDK), openai and genai (API-based).
type Embedder interface {
	// Embed converts a single text to an embedding vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int
}
