package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Actor               string    `gorm:"type:varchar(20);not null"`
	Content             string    `gorm:"type:text;not null"`
	IsEscalationTrigger bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
