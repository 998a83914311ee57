package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable once created. Messages within a session are
// ordered by CreatedAt, with creation order breaking exact ties.
type ChatMessage struct {
	Id                  uuid.UUID
	ChatSessionId       uuid.UUID
	Actor               string
	Content             string
	IsEscalationTrigger bool
	CreatedAt           time.Time
}
