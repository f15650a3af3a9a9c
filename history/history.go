package history

import (
	"sync"

	"github.com/becomeliminal/persona-go-sdk/core"
)

// History is the ordered message log for one session.
//
// The retention bound is fixed at creation by the owning Store. A positive
// bound keeps only the most recent messages; zero or negative means the log
// grows unboundedly for the process lifetime.
type History struct {
	mu        sync.Mutex
	retention int
	messages  []core.Message
}

func newHistory(retention int) *History {
	return &History{retention: retention}
}

// Append adds an ordered batch of messages to the end of the log, then
// truncates to the last `retention` messages when the bound is positive.
// The bound holds as an invariant after every append, not just eventually.
func (h *History) Append(msgs ...core.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, msgs...)
	if h.retention > 0 && len(h.messages) > h.retention {
		h.messages = h.messages[len(h.messages)-h.retention:]
	}
}

// Messages returns a copy of the current log, oldest first.
func (h *History) Messages() []core.Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.messages) == 0 {
		return nil
	}
	out := make([]core.Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Len returns the current number of messages in the log.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

// Clear empties the message log in place.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
