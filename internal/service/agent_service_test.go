package service

import (
	"context"
	"testing"
	"time"

	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSession(f *fakeFactory, status entity.ChatSessionStatus, createdAt time.Time) *entity.ChatSession {
	s := &entity.ChatSession{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		SessionToken: uuid.New().String(),
		Status:       status,
		CreatedAt:    createdAt,
	}
	if status == entity.ChatSessionEscalated {
		at := createdAt.Add(time.Minute)
		s.EscalatedAt = &at
	}
	f.store.sessions[s.Id] = s
	return s
}

func TestListEscalatedSessionsOrdered(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAgentService(factory, nopLogger{})
	base := time.Now()

	seedSession(factory, entity.ChatSessionActive, base)
	late := seedSession(factory, entity.ChatSessionEscalated, base.Add(2*time.Hour))
	early := seedSession(factory, entity.ChatSessionEscalated, base.Add(time.Hour))
	seedSession(factory, entity.ChatSessionClosed, base)

	list, err := svc.ListEscalatedSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.Id, list[0].Id)
	assert.Equal(t, late.Id, list[1].Id)
}

func TestSendAgentMessage(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAgentService(factory, nopLogger{})
	agentId := uuid.New()

	escalated := seedSession(factory, entity.ChatSessionEscalated, time.Now())

	msg, err := svc.SendAgentMessage(context.Background(), agentId, &dto.SendAgentMessageRequest{
		SessionId: escalated.Id,
		Message:   "Hi, I'm taking over from here.",
	})
	require.NoError(t, err)
	assert.Equal(t, "agent", msg.Actor)

	messages, err := svc.GetSessionMessages(context.Background(), escalated.Id)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Hi, I'm taking over from here.", messages[0].Content)
}

func TestSendAgentMessageRequiresEscalated(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAgentService(factory, nopLogger{})

	active := seedSession(factory, entity.ChatSessionActive, time.Now())
	closed := seedSession(factory, entity.ChatSessionClosed, time.Now())

	_, err := svc.SendAgentMessage(context.Background(), uuid.New(), &dto.SendAgentMessageRequest{
		SessionId: active.Id, Message: "hello",
	})
	assert.ErrorIs(t, err, ErrInvalidSessionState)

	_, err = svc.SendAgentMessage(context.Background(), uuid.New(), &dto.SendAgentMessageRequest{
		SessionId: closed.Id, Message: "hello",
	})
	assert.ErrorIs(t, err, ErrInvalidSessionState)

	_, err = svc.SendAgentMessage(context.Background(), uuid.New(), &dto.SendAgentMessageRequest{
		SessionId: uuid.New(), Message: "hello",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCloseSession(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAgentService(factory, nopLogger{})

	escalated := seedSession(factory, entity.ChatSessionEscalated, time.Now())

	err := svc.CloseSession(context.Background(), escalated.Id)
	require.NoError(t, err)

	stored := factory.store.sessions[escalated.Id]
	assert.Equal(t, entity.ChatSessionClosed, stored.Status)
	require.NotNil(t, stored.ClosedAt)
	firstClosedAt := *stored.ClosedAt

	// Closing again fails and leaves ClosedAt untouched
	err = svc.CloseSession(context.Background(), escalated.Id)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, firstClosedAt, *factory.store.sessions[escalated.Id].ClosedAt)
}

func TestCloseSessionFromActive(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAgentService(factory, nopLogger{})

	active := seedSession(factory, entity.ChatSessionActive, time.Now())

	err := svc.CloseSession(context.Background(), active.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.ChatSessionClosed, factory.store.sessions[active.Id].Status)

	err = svc.CloseSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
