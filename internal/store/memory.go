// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Quiz sessions are ephemeral: they live for one training run and are
// only persisted (as aggregate results) once finished, so a map behind
// an RWMutex is all the durability they need.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/pushfold-trainer/internal/trainer"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for quiz sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *trainer.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*trainer.Session, error)

	// Delete removes a session. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*trainer.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*trainer.Session)}
}

func (m *memory) Save(ctx context.Context, s *trainer.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*trainer.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
