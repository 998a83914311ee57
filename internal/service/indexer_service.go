package service

import (
	"context"
	"encoding/json"

	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"
	"helpdesk-chatbot-be/pkg/matching"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewCorpusLoader builds the snapshot loader the matching engine pulls
// from: all active knowledge entries, oldest first.
func NewCorpusLoader(uowFactory unitofwork.RepositoryFactory) matching.LoaderFunc {
	return func(ctx context.Context) (matching.Corpus, error) {
		uow := uowFactory.NewUnitOfWork(ctx)

		entries, err := uow.KnowledgeEntryRepository().FindAll(ctx,
			specification.ActiveOnly{},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return matching.Corpus{}, err
		}

		docs := make([]matching.Document, 0, len(entries))
		for _, e := range entries {
			docs = append(docs, matching.Document{
				ID:       e.Id.String(),
				Question: e.Question,
				Answer:   e.Answer,
			})
		}
		return matching.Corpus{Documents: docs}, nil
	}
}

type IIndexerService interface {
	Consume(ctx context.Context) error
}

// indexerService listens for knowledge change events and rebuilds the
// matching index from a fresh snapshot. Every event triggers a full
// rebuild; the payload only identifies what changed for logging.
type indexerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	engine    *matching.Engine
	log       logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	engine *matching.Engine,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:    pubSub,
		topicName: topicName,
		engine:    engine,
		log:       log,
	}
}

func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.KnowledgeChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		is.log.Error("indexer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if err := is.engine.Rebuild(ctx); err != nil {
		is.log.Error("indexer", "index rebuild failed", map[string]interface{}{
			"entry_id": payload.EntryId,
			"action":   payload.Action,
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	is.log.Info("indexer", "index rebuilt", map[string]interface{}{
		"entry_id": payload.EntryId,
		"action":   payload.Action,
	})
	msg.Ack()
}
