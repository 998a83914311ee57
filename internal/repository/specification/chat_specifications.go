package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type BySessionToken struct {
	Token string
}

func (s BySessionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_token = ?", s.Token)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type StatusNot struct {
	Status string
}

func (s StatusNot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", s.Status)
}
