package mapper

import (
	"strings"
	"time"

	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(k *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if k == nil {
		return nil
	}

	var tags []string
	if k.Tags != "" {
		for _, t := range strings.Split(k.Tags, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}

	var updatedAt *time.Time
	if !k.UpdatedAt.IsZero() {
		t := k.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeEntry{
		Id:        k.Id,
		Question:  k.Question,
		Answer:    k.Answer,
		Category:  k.Category,
		Tags:      tags,
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(k *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if k == nil {
		return nil
	}

	var updatedAt time.Time
	if k.UpdatedAt != nil {
		updatedAt = *k.UpdatedAt
	}

	return &model.KnowledgeEntry{
		Id:        k.Id,
		Question:  k.Question,
		Answer:    k.Answer,
		Category:  k.Category,
		Tags:      strings.Join(k.Tags, ", "),
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(models []*model.KnowledgeEntry) []*entity.KnowledgeEntry {
	entities := make([]*entity.KnowledgeEntry, len(models))
	for i, k := range models {
		entities[i] = m.ToEntity(k)
	}
	return entities
}
