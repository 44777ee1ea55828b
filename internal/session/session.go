package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/spacesedan/civicpulse/internal/models"
)

// Session is one conversation's history. Callers own it for the duration
// of a request and hand it back to a Store to persist.
type Session struct {
	ID      string               `json:"id"`
	History []models.ChatMessage `json:"history"`
}

// Store persists sessions by id. Load returns an empty session, not an
// error, for ids it has never seen.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}

func New(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) Append(role, content string) {
	s.History = append(s.History, models.ChatMessage{Role: role, Content: content})
}

// Replace swaps the history for a copy of history.
func (s *Session) Replace(history []models.ChatMessage) {
	s.History = append([]models.ChatMessage(nil), history...)
}

func (s *Session) Clone() *Session {
	return &Session{
		ID:      s.ID,
		History: append([]models.ChatMessage(nil), s.History...),
	}
}
