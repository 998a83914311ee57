package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is append-only; a session can collect several ratings.
type Feedback struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	UserId        uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
}
