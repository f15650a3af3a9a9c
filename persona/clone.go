package persona

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/becomeliminal/persona-go-sdk/completion"
	"github.com/becomeliminal/persona-go-sdk/core"
	"github.com/becomeliminal/persona-go-sdk/history"
	"github.com/becomeliminal/persona-go-sdk/prompts"
	"github.com/becomeliminal/persona-go-sdk/retrieval"
	"github.com/becomeliminal/persona-go-sdk/split"
)

// Clone answers prompts in the voice of the person described by its
// document corpus.
//
// A Clone must be fitted before it can respond. Respond routes through one
// of two paths: stateless retrieval-augmented generation, or (with memory
// enabled) history-aware generation scoped to the current session id.
type Clone struct {
	completer completion.Completer
	index     retrieval.Index
	splitter  split.Splitter
	documents []core.Document

	profile   string
	memory    bool
	retention int
	topK      int

	fitted    bool
	sessionID string
	histories *history.Store
}

// New creates a clone from a completion backend, a retrieval index, and the
// document corpus describing the person. A fresh session id is generated at
// construction.
func New(completer completion.Completer, index retrieval.Index, documents []core.Document, opts ...Option) *Clone {
	c := &Clone{
		completer: completer,
		index:     index,
		documents: documents,
		topK:      1,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.splitter == nil {
		c.splitter = split.NewCharacter(split.DefaultChunkSize, split.DefaultOverlap)
	}
	if c.memory && c.histories == nil {
		c.histories = history.NewStore(c.retention)
	}

	return c
}

// SessionID returns the current session id. It changes on ResetSession.
func (c *Clone) SessionID() string {
	return c.sessionID
}

// Fitted reports whether the retrieval index has been built.
func (c *Clone) Fitted() bool {
	return c.fitted
}

// Fit splits the document corpus into chunks and builds the retrieval index
// from them. It fails on the first malformed document, before any index
// mutation.
func (c *Clone) Fit(ctx context.Context) error {
	if err := validateDocuments(c.documents); err != nil {
		return err
	}

	chunks, err := c.splitter.Split(c.documents)
	if err != nil {
		return err
	}
	if err := c.index.Add(ctx, chunks); err != nil {
		return err
	}

	c.fitted = true
	log.Printf("[PERSONA] Fitted on %d documents (%d chunks)", len(c.documents), len(chunks))
	return nil
}

// Update splits new documents and adds them to the existing index without
// rebuilding it. The clone must already be fitted.
func (c *Clone) Update(ctx context.Context, documents []core.Document) error {
	if !c.fitted {
		return ErrNotFitted
	}
	if err := validateDocuments(documents); err != nil {
		return err
	}

	chunks, err := c.splitter.Split(documents)
	if err != nil {
		return err
	}
	if err := c.index.Add(ctx, chunks); err != nil {
		return err
	}

	log.Printf("[PERSONA] Updated with %d documents (%d chunks)", len(documents), len(chunks))
	return nil
}

// Respond answers a prompt in the cloned person's voice.
//
// With memory disabled this is a single stateless retrieval-augmented call:
// no history is read or written. With memory enabled the prompt is first
// reformulated into a standalone query using the current session's history,
// context is retrieved for that query, and the new user and assistant
// messages are appended to the session history.
func (c *Clone) Respond(ctx context.Context, prompt string) (string, error) {
	if !c.fitted {
		return "", ErrNotFitted
	}
	if c.memory {
		return c.respondWithHistory(ctx, prompt)
	}
	return c.respondStateless(ctx, prompt)
}

func (c *Clone) respondStateless(ctx context.Context, prompt string) (string, error) {
	docs, err := c.index.Search(ctx, prompt, c.topK)
	if err != nil {
		return "", err
	}

	return c.completer.Generate(ctx,
		prompts.AnswerSystem(c.profile, docs),
		[]core.Message{core.UserMessage(prompt)},
	)
}

func (c *Clone) respondWithHistory(ctx context.Context, prompt string) (string, error) {
	hist := c.histories.Get(c.sessionID)
	past := hist.Messages()

	query, err := c.contextualize(ctx, past, prompt)
	if err != nil {
		return "", err
	}

	docs, err := c.index.Search(ctx, query, c.topK)
	if err != nil {
		return "", err
	}

	answer, err := c.completer.Generate(ctx,
		prompts.AnswerSystem(c.profile, docs),
		append(past, core.UserMessage(prompt)),
	)
	if err != nil {
		return "", err
	}

	hist.Append(core.UserMessage(prompt), core.AssistantMessage(answer))
	return answer, nil
}

// contextualize rewrites the prompt into a standalone retrieval query using
// the session history. An empty history needs no rewriting.
func (c *Clone) contextualize(ctx context.Context, past []core.Message, prompt string) (string, error) {
	if len(past) == 0 {
		return prompt, nil
	}

	query, err := c.completer.Generate(ctx,
		prompts.ContextualizeSystem,
		append(past, core.UserMessage(prompt)),
	)
	if err != nil {
		return "", err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return prompt, nil
	}

	log.Printf("[PERSONA] Reformulated query: %q", query)
	return query, nil
}

// ResetSession clears the current session's history and replaces the
// session id with a fresh one. This is the only way to start a new
// conversation on a clone with memory enabled.
func (c *Clone) ResetSession() {
	if c.histories != nil {
		c.histories.Clear(c.sessionID)
	}
	c.sessionID = uuid.NewString()
}

// validateDocuments rejects malformed documents, identifying the offending
// position. The whole batch is rejected so no partial index mutation occurs.
func validateDocuments(documents []core.Document) error {
	for i, doc := range documents {
		if strings.TrimSpace(doc.Content) == "" {
			return fmt.Errorf("document at index %d has no content: %w", i, ErrInvalidDocument)
		}
	}
	return nil
}
