package retrieval_test

import (
	"context"
	"testing"

	"github.com/becomeliminal/persona-go-sdk/retrieval"
)

type countingEmbedder struct {
	calls int
}

func (e *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	vec := make([]float32, 4)
	for i := range vec {
		vec[i] = float32(len(text))
	}
	return vec, nil
}

func (e *countingEmbedder) Dimensions() int { return 4 }

func TestCachedEmbedderSkipsBackendOnRepeat(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{}

	cached, err := retrieval.NewCachedEmbedder(inner, 100)
	if err != nil {
		t.Fatalf("NewCachedEmbedder: %v", err)
	}

	first, err := cached.Embed(ctx, "who are you?")
	if err != nil {
		t.Fatalf("first embed: %v", err)
	}

	second, err := cached.Embed(ctx, "who are you?")
	if err != nil {
		t.Fatalf("second embed: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("backend calls = %d, want 1", inner.calls)
	}
	if len(first) != len(second) {
		t.Errorf("cached vector length mismatch: %d vs %d", len(first), len(second))
	}
}

func TestCachedEmbedderDistinctTexts(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{}

	cached, err := retrieval.NewCachedEmbedder(inner, 100)
	if err != nil {
		t.Fatalf("NewCachedEmbedder: %v", err)
	}

	if _, err := cached.Embed(ctx, "first"); err != nil {
		t.Fatalf("embed: %v", err)
	}
	if _, err := cached.Embed(ctx, "second"); err != nil {
		t.Fatalf("embed: %v", err)
	}

	if inner.calls != 2 {
		t.Errorf("backend calls = %d, want 2", inner.calls)
	}
}
