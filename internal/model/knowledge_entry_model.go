package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string         `gorm:"type:text;not null"`
	Answer    string         `gorm:"type:text;not null"`
	Category  string         `gorm:"type:varchar(100);not null;default:'general'"`
	Tags      string         `gorm:"type:text"`
	IsActive  bool           `gorm:"not null;default:true;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}
