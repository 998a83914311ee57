package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionToken string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	EscalatedAt  *time.Time
	ClosedAt     *time.Time
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
