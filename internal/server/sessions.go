package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/editor"
)

// SessionStore holds live editing sessions in memory, keyed by UUID.
// Sessions live for the lifetime of the process; there is no persistence.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*editor.Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*editor.Session)}
}

// Create registers a new session seeded with the default document and
// returns its id.
func (st *SessionStore) Create() (uuid.UUID, *editor.Session) {
	id := uuid.New()
	sess := editor.NewSession()

	st.mu.Lock()
	st.sessions[id] = sess
	st.mu.Unlock()

	return id, sess
}

// Get returns the session for id, or nil if it does not exist.
func (st *SessionStore) Get(id uuid.UUID) *editor.Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
