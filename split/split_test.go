package split_test

import (
	"strings"
	"testing"

	"github.com/becomeliminal/persona-go-sdk/core"
	"github.com/becomeliminal/persona-go-sdk/split"
)

func TestShortDocumentSingleChunk(t *testing.T) {
	s := split.NewCharacter(2000, 100)

	docs, err := s.Split([]core.Document{{Content: "I am a marine biologist."}})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d chunks, want 1", len(docs))
	}
	if docs[0].Content != "I am a marine biologist." {
		t.Errorf("chunk content = %q", docs[0].Content)
	}
}

func TestLongDocumentFansOut(t *testing.T) {
	s := split.NewCharacter(80, 10)

	paragraphs := make([]string, 10)
	for i := range paragraphs {
		paragraphs[i] = "I spent years studying kelp forests along the northern coast."
	}
	content := strings.Join(paragraphs, "\n\n")

	docs, err := s.Split([]core.Document{{Content: content}})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if len(docs) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(docs))
	}
	for i, doc := range docs {
		if strings.TrimSpace(doc.Content) == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestMetadataCarriedOntoChunks(t *testing.T) {
	s := split.NewCharacter(80, 10)

	meta := map[string]string{"source": "memoir"}
	content := strings.Repeat("A sentence about my life and work by the sea. ", 20)

	docs, err := s.Split([]core.Document{{Content: content, Metadata: meta}})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	for i, doc := range docs {
		if doc.Metadata["source"] != "memoir" {
			t.Errorf("chunk %d metadata = %v, want source=memoir", i, doc.Metadata)
		}
	}
}

func TestMultipleDocumentsPreserveOrder(t *testing.T) {
	s := split.NewCharacter(2000, 100)

	docs, err := s.Split([]core.Document{
		{Content: "first"},
		{Content: "second"},
	})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if len(docs) != 2 || docs[0].Content != "first" || docs[1].Content != "second" {
		t.Errorf("chunks = %v, want [first second]", docs)
	}
}
