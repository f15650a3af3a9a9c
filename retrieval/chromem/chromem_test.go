package chromem_test

import (
	"context"
	"testing"

	"github.com/becomeliminal/persona-go-sdk/core"
	"github.com/becomeliminal/persona-go-sdk/embedder/mock"
	"github.com/becomeliminal/persona-go-sdk/retrieval/chromem"
)

func TestAddAndSearch(t *testing.T) {
	ctx := context.Background()

	index, err := chromem.New(mock.New())
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	docs := []core.Document{
		{Content: "I grew up in a small coastal town.", Metadata: map[string]string{"source": "bio"}},
		{Content: "I studied marine biology at university."},
		{Content: "My favorite food is grilled octopus."},
	}
	if err := index.Add(ctx, docs); err != nil {
		t.Fatalf("failed to add documents: %v", err)
	}

	if got := index.Count(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}

	results, err := index.Search(ctx, "where did you grow up?", 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) == 0 || len(results) > 2 {
		t.Fatalf("got %d results, want 1-2", len(results))
	}
	for _, doc := range results {
		if doc.Content == "" {
			t.Error("result has empty content")
		}
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	ctx := context.Background()

	index, err := chromem.New(mock.New())
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	results, err := index.Search(ctx, "anything", 5)
	if err != nil {
		t.Fatalf("search on empty index should not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from empty index, want 0", len(results))
	}
}

func TestSearchLimitLargerThanCollection(t *testing.T) {
	ctx := context.Background()

	index, err := chromem.New(mock.New())
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	if err := index.Add(ctx, []core.Document{{Content: "only document"}}); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	results, err := index.Search(ctx, "query", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Content != "only document" {
		t.Errorf("content = %q, want %q", results[0].Content, "only document")
	}
}

func TestMetadataPreserved(t *testing.T) {
	ctx := context.Background()

	index, err := chromem.New(mock.New())
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	doc := core.Document{
		Content:  "I wrote my thesis on kelp forests.",
		Metadata: map[string]string{"source": "thesis", "year": "2019"},
	}
	if err := index.Add(ctx, []core.Document{doc}); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	results, err := index.Search(ctx, "thesis topic", 1)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Metadata["source"] != "thesis" || results[0].Metadata["year"] != "2019" {
		t.Errorf("metadata = %v, want source=thesis year=2019", results[0].Metadata)
	}
}
