package unitofwork

import (
	"context"

	"helpdesk-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	KnowledgeEntryRepository() contract.KnowledgeEntryRepository
	FeedbackRepository() contract.FeedbackRepository
}
