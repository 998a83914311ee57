package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating        int       `gorm:"not null"`
	Comment       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
