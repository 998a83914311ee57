package service

import (
	"context"
	"testing"

	"helpdesk-chatbot-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeCrudPublishesChanges(t *testing.T) {
	factory := newFakeFactory()
	pub := &noopPublisher{}
	svc := NewKnowledgeService(factory, pub, nopLogger{})

	created, err := svc.Create(context.Background(), &dto.CreateKnowledgeEntryRequest{
		Question: "What are your business hours?",
		Answer:   "We are open 9 to 5, Monday through Friday.",
		Category: "general",
		Tags:     []string{"hours", "schedule"},
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 1, pub.published)

	inactive := false
	updated, err := svc.Update(context.Background(), &dto.UpdateKnowledgeEntryRequest{
		Id:       created.Id,
		Question: created.Question,
		Answer:   "We are open 24/7.",
		Category: created.Category,
		Tags:     created.Tags,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "We are open 24/7.", updated.Answer)
	assert.False(t, updated.IsActive)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, 2, pub.published)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = svc.Delete(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, pub.published)

	list, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestKnowledgeUpdateMissingEntry(t *testing.T) {
	factory := newFakeFactory()
	svc := NewKnowledgeService(factory, &noopPublisher{}, nopLogger{})

	_, err := svc.Update(context.Background(), &dto.UpdateKnowledgeEntryRequest{
		Question: "q", Answer: "a",
	})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCorpusLoaderSkipsInactive(t *testing.T) {
	factory := newFakeFactory()
	svc := NewKnowledgeService(factory, &noopPublisher{}, nopLogger{})

	_, err := svc.Create(context.Background(), &dto.CreateKnowledgeEntryRequest{
		Question: "How do I reset my password?",
		Answer:   "Use the forgot password link.",
	})
	require.NoError(t, err)

	hidden, err := svc.Create(context.Background(), &dto.CreateKnowledgeEntryRequest{
		Question: "Internal runbook entry",
		Answer:   "Not for customers.",
	})
	require.NoError(t, err)

	off := false
	_, err = svc.Update(context.Background(), &dto.UpdateKnowledgeEntryRequest{
		Id:       hidden.Id,
		Question: hidden.Question,
		Answer:   hidden.Answer,
		IsActive: &off,
	})
	require.NoError(t, err)

	loader := NewCorpusLoader(factory)
	corpus, err := loader(context.Background())
	require.NoError(t, err)
	require.Len(t, corpus.Documents, 1)
	assert.Equal(t, "How do I reset my password?", corpus.Documents[0].Question)
}
