package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSessionStatus string

const (
	ChatSessionActive    ChatSessionStatus = "active"
	ChatSessionEscalated ChatSessionStatus = "escalated"
	ChatSessionClosed    ChatSessionStatus = "closed"
)

// ChatSession tracks one conversation from automated handling through
// optional human escalation to closure. Status only ever moves forward:
// active -> escalated -> closed, or active -> closed.
type ChatSession struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	SessionToken string
	Status       ChatSessionStatus
	CreatedAt    time.Time
	EscalatedAt  *time.Time
	ClosedAt     *time.Time
}

// IsClosed reports whether the session reached its terminal state.
func (s *ChatSession) IsClosed() bool {
	return s.Status == ChatSessionClosed
}
