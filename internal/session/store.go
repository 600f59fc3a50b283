package session

import (
	"sync"

	"blackjack-server/pkg/blackjack"

	"github.com/google/uuid"
)

// Store persists one RoundState per session between requests.
// Implementations must serialize access per session: the engine assumes a
// session's state is only ever touched by one caller at a time.
type Store interface {
	// Update runs fn with the session's current state (nil on first contact)
	// under the session's lock and persists the returned state
	Update(id string, fn func(state *blackjack.RoundState) *blackjack.RoundState)
}

// NewID returns a new session identifier
func NewID() string {
	return uuid.New().String()
}

// MemoryStore keeps session states in memory. States do not survive a
// restart; where they live is this layer's concern, not the engine's.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	state *blackjack.RoundState
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*entry),
	}
}

// Update implements Store
func (s *MemoryStore) Update(id string, fn func(state *blackjack.RoundState) *blackjack.RoundState) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		e = &entry{}
		s.sessions[id] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = fn(e.state)
}

// Len returns the number of known sessions
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
