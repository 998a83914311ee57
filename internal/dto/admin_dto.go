package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnalyticsResponse struct {
	TotalSessions     int64             `json:"total_sessions"`
	ActiveSessions    int64             `json:"active_sessions"`
	EscalatedSessions int64             `json:"escalated_sessions"`
	ClosedSessions    int64             `json:"closed_sessions"`
	TotalMessages     int64             `json:"total_messages"`
	EscalationRate    float64           `json:"escalation_rate"`
	AverageRating     float64           `json:"average_rating"`
	KnowledgeEntries  int64             `json:"knowledge_entries"`
	RecentSessions    []*SessionSummary `json:"recent_sessions"`
}

type SessionSummary struct {
	Id           uuid.UUID  `json:"id"`
	SessionToken string     `json:"session_token"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	EscalatedAt  *time.Time `json:"escalated_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=customer agent admin"`
}

type UpdateUserRequest struct {
	Id       uuid.UUID `json:"-"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Password string    `json:"password" validate:"omitempty,min=8"`
	Role     string    `json:"role" validate:"omitempty,oneof=customer agent admin"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type KnowledgeChangedMessage struct {
	EntryId uuid.UUID `json:"entry_id"`
	Action  string    `json:"action"`
}
