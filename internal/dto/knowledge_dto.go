package dto

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeEntryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Category  string     `json:"category"`
	Tags      []string   `json:"tags"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateKnowledgeEntryRequest struct {
	Question string   `json:"question" validate:"required,max=2000"`
	Answer   string   `json:"answer" validate:"required,max=8000"`
	Category string   `json:"category" validate:"max=128"`
	Tags     []string `json:"tags" validate:"max=16,dive,max=64"`
}

type UpdateKnowledgeEntryRequest struct {
	Id       uuid.UUID `json:"-"`
	Question string    `json:"question" validate:"required,max=2000"`
	Answer   string    `json:"answer" validate:"required,max=8000"`
	Category string    `json:"category" validate:"max=128"`
	Tags     []string  `json:"tags" validate:"max=16,dive,max=64"`
	IsActive *bool     `json:"is_active"`
}
