package chromem

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/becomeliminal/persona-go-sdk/core"
	"github.com/becomeliminal/persona-go-sdk/retrieval"
)

// Default collection holding the persona corpus.
const collectionName = "persona"

// Index wraps chromem-go for document retrieval.
// chromem-go is a pure Go, embedded vector database.
type Index struct {
	db       *chromem.DB
	col      *chromem.Collection
	embedder retrieval.Embedder
}

// New creates an in-memory chromem index. Documents are embedded with the
// given embedder on Add and Search.
func New(embedder retrieval.Embedder) (*Index, error) {
	return newIndex(chromem.NewDB(), embedder)
}

// NewPersistent creates (or reopens) a chromem index backed by a directory
// on disk, so a fitted corpus survives process restarts.
func NewPersistent(dir string, embedder retrieval.Embedder) (*Index, error) {
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open persistent db: %w", err)
	}
	return newIndex(db, embedder)
}

func newIndex(db *chromem.DB, embedder retrieval.Embedder) (*Index, error) {
	col, err := db.GetOrCreateCollection(
		collectionName,
		nil, // no collection metadata
		nil, // no embedding func, we provide embeddings ourselves
	)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &Index{
		db:       db,
		col:      col,
		embedder: embedder,
	}, nil
}

// Add embeds and stores a batch of documents.
func (x *Index) Add(ctx context.Context, docs []core.Document) error {
	for i, doc := range docs {
		embedding, err := x.embedder.Embed(ctx, doc.Content)
		if err != nil {
			return fmt.Errorf("embed document %d: %w", i, err)
		}

		err = x.col.AddDocument(ctx, chromem.Document{
			ID:        uuid.NewString(),
			Content:   doc.Content,
			Embedding: embedding,
			Metadata:  doc.Metadata,
		})
		if err != nil {
			return fmt.Errorf("add document %d: %w", i, err)
		}
	}

	log.Printf("[CHROMEM] Added %d documents (collection size now %d)", len(docs), x.col.Count())
	return nil
}

// Search returns up to k documents most similar to the query.
func (x *Index) Search(ctx context.Context, query string, k int) ([]core.Document, error) {
	embedding, err := x.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	// chromem-go requires nResults <= collection size.
	// Retry with smaller limits until something fits.
	var results []chromem.Result
	for limit := k; limit >= 1; limit-- {
		results, err = x.col.QueryEmbedding(ctx, embedding, limit, nil, nil)
		if err == nil {
			break
		}
		if isInsufficientDocsError(err) {
			if limit == 1 {
				log.Printf("[CHROMEM] Collection is empty")
				return nil, nil
			}
			continue
		}
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	docs := make([]core.Document, 0, len(results))
	for _, result := range results {
		docs = append(docs, core.Document{
			Content:  result.Content,
			Metadata: result.Metadata,
		})
	}

	log.Printf("[CHROMEM] Query returned %d documents", len(docs))
	return docs, nil
}

// Count returns the number of stored documents.
func (x *Index) Count() int {
	return x.col.Count()
}

// Close releases resources. chromem-go keeps everything in memory (or flushes
// writes as they happen in persistent mode), so there is nothing to close.
func (x *Index) Close() error {
	return nil
}

// isInsufficientDocsError checks if an error is due to asking for more
// results than the collection holds.
func isInsufficientDocsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "nResults must be") || strings.Contains(msg, "number of documents")
}
