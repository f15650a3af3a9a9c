package persona

import (
	"context"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// Result is the outcome of an asynchronous Respond call.
type Result struct {
	Text string
	Err  error
}

// RespondAsync runs Respond in a goroutine and delivers the result on the
// returned channel. Routing and truncation policy are identical to the
// synchronous path; only the caller's goroutine is freed while the
// retrieval and completion backends do their work.
//
// The single-writer-per-session expectation still applies: do not overlap
// calls for the same session.
func (c *Clone) RespondAsync(ctx context.Context, prompt string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		text, err := c.Respond(ctx, prompt)
		ch <- Result{Text: text, Err: err}
	}()
	return ch
}

// FitAsync runs Fit in a goroutine and delivers its error on the returned
// channel.
func (c *Clone) FitAsync(ctx context.Context) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- c.Fit(ctx)
	}()
	return ch
}

// UpdateAsync runs Update in a goroutine and delivers its error on the
// returned channel.
func (c *Clone) UpdateAsync(ctx context.Context, documents []core.Document) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- c.Update(ctx, documents)
	}()
	return ch
}
