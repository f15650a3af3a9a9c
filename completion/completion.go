package completion

import (
	"context"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// Completer is the chat completion backend interface. It is invoked both
// for final answer generation and for history-based query reformulation.
//
// Failures (network errors, rate limits) propagate unmodified to the
// caller; retry policy, if any, belongs to the implementation.
type Completer interface {
	// Generate produces a text completion for the conversation, with the
	// given system prompt prepended.
	Generate(ctx context.Context, system string, messages []core.Message) (string, error)
}
