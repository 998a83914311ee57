package service

import (
	"context"
	"sort"
	"sync"

	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/contract"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"
	"helpdesk-chatbot-be/pkg/matching"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory repositories the service tests run
// against. Specifications are interpreted by type switch, mirroring the
// filters the real gorm implementations apply.
type fakeStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	sessions  map[uuid.UUID]*entity.ChatSession
	messages  []*entity.ChatMessage
	entries   map[uuid.UUID]*entity.KnowledgeEntry
	feedbacks []*entity.Feedback
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[uuid.UUID]*entity.ChatSession),
		entries:  make(map[uuid.UUID]*entity.KnowledgeEntry),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

func (u *fakeUow) KnowledgeEntryRepository() contract.KnowledgeEntryRepository {
	return &fakeKnowledgeRepo{store: u.store}
}

func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository {
	return &fakeFeedbackRepo{store: u.store}
}

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *s
	r.store.sessions[s.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, s *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *s
	r.store.sessions[s.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.ChatSession
	for _, s := range r.store.sessions {
		if sessionMatches(s, specs) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sortSessions(out, specs)
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func sessionMatches(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if s.Id != v.ID {
				return false
			}
		case specification.BySessionToken:
			if s.SessionToken != v.Token {
				return false
			}
		case specification.OwnedBy:
			if s.UserId != v.UserID {
				return false
			}
		case specification.ByStatus:
			if string(s.Status) != v.Status {
				return false
			}
		case specification.StatusNot:
			if string(s.Status) == v.Status {
				return false
			}
		}
	}
	return true
}

func sortSessions(out []*entity.ChatSession, specs []specification.Specification) {
	for _, sp := range specs {
		if ob, ok := sp.(specification.OrderBy); ok {
			sort.SliceStable(out, func(i, j int) bool {
				var less bool
				switch ob.Field {
				case "escalated_at":
					switch {
					case out[i].EscalatedAt == nil:
						less = out[j].EscalatedAt != nil
					case out[j].EscalatedAt == nil:
						less = false
					default:
						less = out[i].EscalatedAt.Before(*out[j].EscalatedAt)
					}
				default:
					less = out[i].CreatedAt.Before(out[j].CreatedAt)
				}
				if ob.Desc {
					return !less
				}
				return less
			})
		}
	}
}

type fakeMessageRepo struct {
	store *fakeStore
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *m
	r.store.messages = append(r.store.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.ChatMessage
	for _, m := range r.store.messages {
		if messageMatches(m, specs) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func messageMatches(m *entity.ChatMessage, specs []specification.Specification) bool {
	for _, sp := range specs {
		if v, ok := sp.(specification.ByChatSessionID); ok {
			if m.ChatSessionId != v.ChatSessionID {
				return false
			}
		}
	}
	return true
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *u
	r.store.users[u.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	return r.Create(ctx, u)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if u.Id != v.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != v.Username {
				return false
			}
		case specification.ByEmail:
			if u.Email != v.Email {
				return false
			}
		case specification.ByRole:
			if string(u.Role) != v.Role {
				return false
			}
		}
	}
	return true
}

type fakeKnowledgeRepo struct {
	store *fakeStore
}

func (r *fakeKnowledgeRepo) Create(ctx context.Context, e *entity.KnowledgeEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *e
	r.store.entries[e.Id] = &cp
	return nil
}

func (r *fakeKnowledgeRepo) Update(ctx context.Context, e *entity.KnowledgeEntry) error {
	return r.Create(ctx, e)
}

func (r *fakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.entries, id)
	return nil
}

func (r *fakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.KnowledgeEntry
	for _, e := range r.store.entries {
		if knowledgeMatches(e, specs) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeKnowledgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func knowledgeMatches(e *entity.KnowledgeEntry, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if e.Id != v.ID {
				return false
			}
		case specification.ActiveOnly:
			if !e.IsActive {
				return false
			}
		case specification.ByCategory:
			if e.Category != v.Category {
				return false
			}
		}
	}
	return true
}

type fakeFeedbackRepo struct {
	store *fakeStore
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, f *entity.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *f
	r.store.feedbacks = append(r.store.feedbacks, &cp)
	return nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.Feedback, 0, len(r.store.feedbacks))
	for _, f := range r.store.feedbacks {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) AverageRating(ctx context.Context) (float64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.store.feedbacks) == 0 {
		return 0, nil
	}
	var sum int
	for _, f := range r.store.feedbacks {
		sum += f.Rating
	}
	return float64(sum) / float64(len(r.store.feedbacks)), nil
}

// fakeMatcher returns scripted results so session transitions can be
// driven deterministically.
type fakeMatcher struct {
	result matching.Result
	err    error
	calls  int
}

func (m *fakeMatcher) Query(ctx context.Context, text string) (matching.Result, error) {
	m.calls++
	return m.result, m.err
}

type noopPublisher struct {
	published int
}

func (p *noopPublisher) Publish(ctx context.Context, payload []byte) error {
	p.published++
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
