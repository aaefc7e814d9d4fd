package session

import (
	"sync"
	"time"
)

// Session binds an opaque id to an authenticated user for a limited time.
type Session struct {
	ID        string
	UserID    int
	ExpiresAt time.Time
}

// Store holds active sessions. The interface is deliberately narrow
// (create/validate/destroy) so the in-memory implementation can later be
// swapped for a durable one without touching the auth service.
type Store interface {
	Create(id string, userID int, ttl time.Duration)
	Validate(id string) (int, bool)
	Destroy(id string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an in-process session store. Sessions do not
// survive a restart, which matches the single-process deployment model.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (s *memoryStore) Create(id string, userID int, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = Session{ID: id, UserID: userID, ExpiresAt: time.Now().Add(ttl)}
}

// Validate returns the owning user id if the session exists and has not
// expired. Expired entries are removed on the spot.
func (s *memoryStore) Validate(id string) (int, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Destroy(id)
		return 0, false
	}
	return sess.UserID, true
}

// Destroy is idempotent; removing an absent session is a no-op.
func (s *memoryStore) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
