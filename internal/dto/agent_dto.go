package dto

import (
	"time"

	"github.com/google/uuid"
)

type EscalatedSessionResponse struct {
	Id           uuid.UUID  `json:"id"`
	SessionToken string     `json:"session_token"`
	UserId       uuid.UUID  `json:"user_id"`
	Username     string     `json:"username"`
	CreatedAt    time.Time  `json:"created_at"`
	EscalatedAt  *time.Time `json:"escalated_at"`
	MessageCount int64      `json:"message_count"`
}

type SendAgentMessageRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required,max=4000"`
}
