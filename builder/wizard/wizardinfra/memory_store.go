package wizardinfra

import (
	"context"
	"sync"

	"github.com/vitaehq/vitae/builder/wizard"
	"github.com/vitaehq/vitae/pkg/kernel"
)

// MemoryDraftStore is an in-process DraftStore for tests and
// single-node development runs
type MemoryDraftStore struct {
	mu       sync.RWMutex
	sessions map[kernel.SessionID]*wizard.Session
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{
		sessions: make(map[kernel.SessionID]*wizard.Session),
	}
}

func (s *MemoryDraftStore) Save(_ context.Context, session *wizard.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemoryDraftStore) Get(_ context.Context, id kernel.SessionID) (*wizard.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, wizard.ErrSessionNotFound().WithDetail("session_id", id)
	}
	return session, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, id kernel.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
