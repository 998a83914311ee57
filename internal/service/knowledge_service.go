package service

import (
	"context"
	"encoding/json"
	"time"

	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	List(ctx context.Context) ([]*dto.KnowledgeEntryResponse, error)
	Create(ctx context.Context, req *dto.CreateKnowledgeEntryRequest) (*dto.KnowledgeEntryResponse, error)
	Update(ctx context.Context, req *dto.UpdateKnowledgeEntryRequest) (*dto.KnowledgeEntryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (ks *knowledgeService) List(ctx context.Context) ([]*dto.KnowledgeEntryResponse, error) {
	uow := ks.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.KnowledgeEntryRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.KnowledgeEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toKnowledgeEntryResponse(e))
	}
	return response, nil
}

func (ks *knowledgeService) Create(ctx context.Context, req *dto.CreateKnowledgeEntryRequest) (*dto.KnowledgeEntryResponse, error) {
	uow := ks.uowFactory.NewUnitOfWork(ctx)

	entry := entity.KnowledgeEntry{
		Id:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Tags:      req.Tags,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uow.KnowledgeEntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	if err := ks.publishChanged(ctx, entry.Id, "created"); err != nil {
		return nil, err
	}
	return toKnowledgeEntryResponse(&entry), nil
}

func (ks *knowledgeService) Update(ctx context.Context, req *dto.UpdateKnowledgeEntryRequest) (*dto.KnowledgeEntryResponse, error) {
	uow := ks.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeEntryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	now := time.Now()
	entry.Question = req.Question
	entry.Answer = req.Answer
	entry.Category = req.Category
	entry.Tags = req.Tags
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}
	entry.UpdatedAt = &now

	if err := uow.KnowledgeEntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	if err := ks.publishChanged(ctx, entry.Id, "updated"); err != nil {
		return nil, err
	}
	return toKnowledgeEntryResponse(entry), nil
}

func (ks *knowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := ks.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeEntryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	if err := uow.KnowledgeEntryRepository().Delete(ctx, id); err != nil {
		return err
	}
	return ks.publishChanged(ctx, id, "deleted")
}

func (ks *knowledgeService) publishChanged(ctx context.Context, entryId uuid.UUID, action string) error {
	payload, err := json.Marshal(dto.KnowledgeChangedMessage{
		EntryId: entryId,
		Action:  action,
	})
	if err != nil {
		return err
	}
	if err := ks.publisherService.Publish(ctx, payload); err != nil {
		return err
	}
	ks.log.Info("knowledge", "change published", map[string]interface{}{
		"entry_id": entryId,
		"action":   action,
	})
	return nil
}

func toKnowledgeEntryResponse(e *entity.KnowledgeEntry) *dto.KnowledgeEntryResponse {
	return &dto.KnowledgeEntryResponse{
		Id:        e.Id,
		Question:  e.Question,
		Answer:    e.Answer,
		Category:  e.Category,
		Tags:      e.Tags,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
