package history

import "sync"

// Store maps session ids to message logs.
//
// A Store is created once and passed by reference to every Clone that needs
// it, so history is visible to all requests for the same session id. The
// retention bound applies to every History the store creates.
//
// Store operations never fail: unknown session ids are treated as empty
// history, not as errors.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*History
	retention int
}

// NewStore creates a session history store. A positive retention keeps only
// the most recent `retention` messages per session; zero or negative keeps
// everything.
func NewStore(retention int) *Store {
	return &Store{
		sessions:  make(map[string]*History),
		retention: retention,
	}
}

// Get returns the history for a session id, creating an empty one if absent.
// Repeated calls with the same id return the same underlying log while the
// id is live.
func (s *Store) Get(sessionID string) *History {
	s.mu.RLock()
	h, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return h
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if h, ok := s.sessions[sessionID]; ok {
		return h
	}

	h = newHistory(s.retention)
	s.sessions[sessionID] = h
	return h
}

// Clear removes all messages associated with a session id. A later Get with
// the same id starts fresh. Clearing an unknown id is a no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len returns the number of sessions currently held by the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
