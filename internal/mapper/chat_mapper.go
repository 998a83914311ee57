package mapper

import (
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:           s.Id,
		UserId:       s.UserId,
		SessionToken: s.SessionToken,
		Status:       entity.ChatSessionStatus(s.Status),
		CreatedAt:    s.CreatedAt,
		EscalatedAt:  s.EscalatedAt,
		ClosedAt:     s.ClosedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:           s.Id,
		UserId:       s.UserId,
		SessionToken: s.SessionToken,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		EscalatedAt:  s.EscalatedAt,
		ClosedAt:     s.ClosedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:                  msg.Id,
		ChatSessionId:       msg.ChatSessionId,
		Actor:               msg.Actor,
		Content:             msg.Content,
		IsEscalationTrigger: msg.IsEscalationTrigger,
		CreatedAt:           msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:                  msg.Id,
		ChatSessionId:       msg.ChatSessionId,
		Actor:               msg.Actor,
		Content:             msg.Content,
		IsEscalationTrigger: msg.IsEscalationTrigger,
		CreatedAt:           msg.CreatedAt,
	}
}

// Feedback Mappers

func (m *ChatMapper) FeedbackToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:            f.Id,
		ChatSessionId: f.ChatSessionId,
		UserId:        f.UserId,
		Rating:        f.Rating,
		Comment:       f.Comment,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *ChatMapper) FeedbackToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:            f.Id,
		ChatSessionId: f.ChatSessionId,
		UserId:        f.UserId,
		Rating:        f.Rating,
		Comment:       f.Comment,
		CreatedAt:     f.CreatedAt,
	}
}
