package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/spacesedan/civicpulse/internal/models"
)

// MemoryStore keeps sessions in process. Sessions are copied on the way in
// and out so callers never share a backing slice.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]models.ChatMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]models.ChatMessage),
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := New(id)
	s.Replace(m.sessions[id])
	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("cannot save session without an id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = append([]models.ChatMessage(nil), s.History...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
