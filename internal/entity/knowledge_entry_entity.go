package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is one curated question/answer pair. Only active entries
// reach the matching index; the indexer always receives a full snapshot.
type KnowledgeEntry struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	Category  string
	Tags      []string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
