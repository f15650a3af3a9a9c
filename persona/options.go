package persona

import (
	"github.com/becomeliminal/persona-go-sdk/history"
	"github.com/becomeliminal/persona-go-sdk/split"
)

// Option configures a Clone.
type Option func(*Clone)

// WithProfile sets the profile text of the person being cloned. It is
// injected into every answer prompt alongside the retrieved context.
func WithProfile(profile string) Option {
	return func(c *Clone) {
		c.profile = profile
	}
}

// WithMemory enables per-session conversation history. A positive retention
// keeps only the most recent `retention` messages per session; zero or
// negative keeps everything.
func WithMemory(retention int) Option {
	return func(c *Clone) {
		c.memory = true
		c.retention = retention
	}
}

// WithHistoryStore sets the session history store. Use this to share one
// store across several clones; the store's own retention bound applies.
// History is only read or written when memory is enabled via WithMemory.
func WithHistoryStore(store *history.Store) Option {
	return func(c *Clone) {
		c.histories = store
	}
}

// WithSplitter sets the document splitter used by Fit and Update.
func WithSplitter(s split.Splitter) Option {
	return func(c *Clone) {
		c.splitter = s
	}
}

// WithTopK sets how many context documents are retrieved per prompt.
func WithTopK(k int) Option {
	return func(c *Clone) {
		if k > 0 {
			c.topK = k
		}
	}
}
