package service

import (
	"context"
	"errors"
	"time"

	"helpdesk-chatbot-be/internal/constant"
	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"
	"helpdesk-chatbot-be/pkg/matching"

	"github.com/google/uuid"
)

// Matcher is the slice of the matching engine the chat flow needs.
type Matcher interface {
	Query(ctx context.Context, text string) (matching.Result, error)
}

type IChatService interface {
	StartSession(ctx context.Context, userId uuid.UUID) (*dto.StartSessionResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, sessionToken string) ([]*dto.ChatMessageResponse, error)
	SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.SubmitFeedbackRequest) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	matcher    Matcher
	log        logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, matcher Matcher, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		matcher:    matcher,
		log:        log,
	}
}

// StartSession resumes the user's most recent open session when one
// exists, otherwise creates a fresh one together with the bot welcome
// message.
func (cs *chatService) StartSession(ctx context.Context, userId uuid.UUID) (*dto.StartSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.StatusNot{Status: constant.ChatSessionStatusClosed},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.StartSessionResponse{
			Id:           existing.Id,
			SessionToken: existing.SessionToken,
			Status:       string(existing.Status),
			CreatedAt:    existing.CreatedAt,
			Resumed:      true,
		}, nil
	}

	now := time.Now()
	chatSession := entity.ChatSession{
		Id:           uuid.New(),
		UserId:       userId,
		SessionToken: uuid.New().String(),
		Status:       entity.ChatSessionActive,
		CreatedAt:    now,
	}
	welcome := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Actor:         constant.ChatMessageActorBot,
		Content:       constant.WelcomeMessage,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &welcome); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.log.Info("chat", "session started", map[string]interface{}{
		"session_id": chatSession.Id,
		"user_id":    userId,
	})

	return &dto.StartSessionResponse{
		Id:           chatSession.Id,
		SessionToken: chatSession.SessionToken,
		Status:       string(chatSession.Status),
		CreatedAt:    chatSession.CreatedAt,
	}, nil
}

// SendMessage stores the user message, produces the bot reply and applies
// the escalation transition when the similarity search comes up short.
// The message pair and any status change commit in one transaction.
func (cs *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{Token: req.SessionToken},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, ErrSessionNotFound
	}
	if chatSession.IsClosed() {
		return nil, ErrSessionClosed
	}

	var (
		botContent string
		similarity float64
		trigger    bool
	)

	switch chatSession.Status {
	case entity.ChatSessionEscalated:
		// A human owns the conversation; the bot answers when it can
		// but never re-evaluates the escalation.
		res, qerr := cs.matcher.Query(ctx, req.Message)
		switch {
		case qerr == nil && res.Matched:
			botContent = res.Answer
			similarity = res.Similarity
		case errors.Is(qerr, matching.ErrIndexNotReady):
			botContent = constant.IndexNotReadyMessage
		default:
			botContent = constant.EscalationFallbackMessage
		}
	default:
		res, qerr := cs.matcher.Query(ctx, req.Message)
		switch {
		case qerr == nil:
			similarity = res.Similarity
			if res.Escalate {
				botContent = constant.EscalationFallbackMessage
				trigger = true
			} else {
				botContent = res.Answer
			}
		case errors.Is(qerr, matching.ErrIndexNotReady):
			// No index to answer from yet; hand off to a human like
			// any other miss, with a distinct bot reply.
			botContent = constant.IndexNotReadyMessage
			trigger = true
		default:
			return nil, qerr
		}
	}

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Actor:         constant.ChatMessageActorUser,
		Content:       req.Message,
		CreatedAt:     now,
	}
	botMessage := entity.ChatMessage{
		Id:                  uuid.New(),
		ChatSessionId:       chatSession.Id,
		Actor:               constant.ChatMessageActorBot,
		Content:             botContent,
		IsEscalationTrigger: trigger,
		CreatedAt:           now.Add(time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &botMessage); err != nil {
		return nil, err
	}

	if trigger {
		escalatedAt := botMessage.CreatedAt
		chatSession.Status = entity.ChatSessionEscalated
		chatSession.EscalatedAt = &escalatedAt
		if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
			return nil, err
		}
		cs.log.Warn("chat", "session escalated", map[string]interface{}{
			"session_id": chatSession.Id,
			"similarity": similarity,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		Response:      botContent,
		Similarity:    similarity,
		Escalated:     trigger,
		SessionStatus: string(chatSession.Status),
	}, nil
}

// GetHistory returns the session transcript oldest first. A token that
// matches no session owned by the user yields an empty list.
func (cs *chatService) GetHistory(ctx context.Context, userId uuid.UUID, sessionToken string) ([]*dto.ChatMessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{Token: sessionToken},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return []*dto.ChatMessageResponse{}, nil
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

func (cs *chatService) SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.SubmitFeedbackRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{Token: req.SessionToken},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if chatSession == nil {
		return ErrSessionNotFound
	}

	feedback := entity.Feedback{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		UserId:        userId,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now(),
	}
	return uow.FeedbackRepository().Create(ctx, &feedback)
}
