package api

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fitcoach/fitcoach/internal/chat"
)

// SessionStore holds in-memory chat sessions keyed by the sid cookie value.
// Transcripts live only as long as the process; there is no persistence.
//
// Safe for concurrent use.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*chat.Session
	factory  func() (*chat.Session, error)
}

// NewSessionStore creates a store that builds sessions with the given
// factory on first access.
func NewSessionStore(factory func() (*chat.Session, error)) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*chat.Session),
		factory:  factory,
	}
}

// Get returns the session for the given ID, creating it if absent.
func (s *SessionStore) Get(id uuid.UUID) (*chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	sess, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	s.sessions[id] = sess
	return sess, nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
