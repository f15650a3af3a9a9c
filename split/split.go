package split

import (
	"fmt"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// Defaults sized so chunks fit comfortably in a completion prompt while the
// overlap preserves context across chunk boundaries.
const (
	DefaultChunkSize = 2000
	DefaultOverlap   = 100
)

// Splitter cuts documents into bounded-size chunks for indexing.
type Splitter interface {
	Split(docs []core.Document) ([]core.Document, error)
}

// CharacterSplitter splits document text recursively on paragraph, line and
// word boundaries, keeping chunks under a character limit.
type CharacterSplitter struct {
	inner textsplitter.RecursiveCharacter
}

// NewCharacter creates a character splitter with the given chunk size and
// overlap. Non-positive values fall back to the defaults.
func NewCharacter(chunkSize, overlap int) *CharacterSplitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap <= 0 {
		overlap = DefaultOverlap
	}
	return &CharacterSplitter{
		inner: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(overlap),
		),
	}
}

// Split chunks each document's content, carrying the source document's
// metadata onto every chunk.
func (s *CharacterSplitter) Split(docs []core.Document) ([]core.Document, error) {
	var out []core.Document
	for i, doc := range docs {
		chunks, err := s.inner.SplitText(doc.Content)
		if err != nil {
			return nil, fmt.Errorf("split document %d: %w", i, err)
		}
		for _, chunk := range chunks {
			out = append(out, core.Document{Content: chunk, Metadata: doc.Metadata})
		}
	}
	return out, nil
}
