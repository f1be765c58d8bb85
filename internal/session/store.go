package session

import (
	"context"
	"sync"
)

// Store abstracts session persistence so the engine can be tested without
// shared state and production can choose its backing. GetOrCreate returns a
// private snapshot; mutations only become visible after Save. Atomicity of
// a read-modify-write cycle is the caller's job (the engine serializes per
// session id), not the store's.
type Store interface {
	GetOrCreate(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

// MemoryStore is the default in-process Store: a map guarded by a mutex.
// Sessions never expire; they live for the process lifetime.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// GetOrCreate returns a copy of the stored session, creating an empty one
// on first reference to the id.
func (m *MemoryStore) GetOrCreate(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s.Clone(), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s.Clone(), nil
	}
	s = &Session{ID: id}
	m.sessions[id] = s
	return s.Clone(), nil
}

// Save stores a copy of the session under its id.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	m.sessions[s.ID] = s.Clone()
	m.mu.Unlock()
	return nil
}

// Len reports the number of live sessions. Intended for tests and metrics.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
