package retrieval

import (
	"context"

	"github.com/dgraph-io/ristretto"
)

// CachedEmbedder wraps an Embedder with an in-process ristretto cache so
// repeated texts (retried queries, re-fit corpora) skip the backend.
type CachedEmbedder struct {
	inner Embedder
	cache *ristretto.Cache
}

// NewCachedEmbedder creates a caching wrapper holding up to maxEntries
// embeddings.
func NewCachedEmbedder(inner Embedder, maxEntries int64) (*CachedEmbedder, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &CachedEmbedder{inner: inner, cache: cache}, nil
}

// Embed returns the cached vector for text, or embeds and caches it.
func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := e.cache.Get(text); ok {
		return v.([]float32), nil
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	// Set is buffered; Wait makes the entry visible to the next lookup.
	e.cache.Set(text, vec, 1)
	e.cache.Wait()

	return vec, nil
}

// Dimensions returns the inner embedder's vector size.
func (e *CachedEmbedder) Dimensions() int {
	return e.inner.Dimensions()
}
