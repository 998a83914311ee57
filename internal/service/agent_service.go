package service

import (
	"context"
	"time"

	"helpdesk-chatbot-be/internal/constant"
	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAgentService interface {
	ListEscalatedSessions(ctx context.Context) ([]*dto.EscalatedSessionResponse, error)
	GetSessionMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	SendAgentMessage(ctx context.Context, agentId uuid.UUID, req *dto.SendAgentMessageRequest) (*dto.ChatMessageResponse, error)
	CloseSession(ctx context.Context, sessionId uuid.UUID) error
}

type agentService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAgentService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (as *agentService) ListEscalatedSessions(ctx context.Context) ([]*dto.EscalatedSessionResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByStatus{Status: constant.ChatSessionStatusEscalated},
		specification.OrderBy{Field: "escalated_at"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.EscalatedSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		username := ""
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: s.UserId})
		if err != nil {
			return nil, err
		}
		if user != nil {
			username = user.Username
		}

		count, err := uow.ChatMessageRepository().Count(ctx,
			specification.ByChatSessionID{ChatSessionID: s.Id},
		)
		if err != nil {
			return nil, err
		}

		response = append(response, &dto.EscalatedSessionResponse{
			Id:           s.Id,
			SessionToken: s.SessionToken,
			UserId:       s.UserId,
			Username:     username,
			CreatedAt:    s.CreatedAt,
			EscalatedAt:  s.EscalatedAt,
			MessageCount: count,
		})
	}
	return response, nil
}

func (as *agentService) GetSessionMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSession.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, &dto.ChatMessageResponse{
			Id:                  m.Id,
			Actor:               m.Actor,
			Content:             m.Content,
			IsEscalationTrigger: m.IsEscalationTrigger,
			CreatedAt:           m.CreatedAt,
		})
	}
	return response, nil
}

// SendAgentMessage appends a human reply. Only escalated sessions accept
// agent messages.
func (as *agentService) SendAgentMessage(ctx context.Context, agentId uuid.UUID, req *dto.SendAgentMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, ErrSessionNotFound
	}
	if chatSession.Status != entity.ChatSessionEscalated {
		return nil, ErrInvalidSessionState
	}

	msg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Actor:         constant.ChatMessageActorAgent,
		Content:       req.Message,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &msg); err != nil {
		return nil, err
	}

	as.log.Info("agent", "agent replied", map[string]interface{}{
		"session_id": chatSession.Id,
		"agent_id":   agentId,
	})

	return &dto.ChatMessageResponse{
		Id:        msg.Id,
		Actor:     msg.Actor,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}, nil
}

// CloseSession moves an active or escalated session to its terminal
// state. Closing twice fails; ClosedAt is written once.
func (as *agentService) CloseSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if chatSession == nil {
		return ErrSessionNotFound
	}
	if chatSession.IsClosed() {
		return ErrSessionClosed
	}

	now := time.Now()
	chatSession.Status = entity.ChatSessionClosed
	chatSession.ClosedAt = &now
	if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
		return err
	}

	as.log.Info("agent", "session closed", map[string]interface{}{
		"session_id": chatSession.Id,
	})
	return nil
}
