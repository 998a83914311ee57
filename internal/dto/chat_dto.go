package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionResponse struct {
	Id           uuid.UUID `json:"id"`
	SessionToken string    `json:"session_token"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Resumed      bool      `json:"resumed"`
}

type SendMessageRequest struct {
	SessionToken string `json:"session_token" validate:"required"`
	Message      string `json:"message" validate:"required,max=4000"`
}

type SendMessageResponse struct {
	Response      string  `json:"response"`
	Similarity    float64 `json:"similarity"`
	Escalated     bool    `json:"escalated"`
	SessionStatus string  `json:"session_status"`
}

type ChatMessageResponse struct {
	Id                  uuid.UUID `json:"id"`
	Actor               string    `json:"actor"`
	Content             string    `json:"content"`
	IsEscalationTrigger bool      `json:"is_escalation_trigger"`
	CreatedAt           time.Time `json:"created_at"`
}

type SubmitFeedbackRequest struct {
	SessionToken string `json:"session_token" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"max=2000"`
}
