package service

import (
	"context"
	"time"

	"helpdesk-chatbot-be/internal/constant"
	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/memory"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, adminId uuid.UUID, id uuid.UUID) error
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	analyticsCache *memory.AnalyticsCache
	log            logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	analyticsCache *memory.AnalyticsCache,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		analyticsCache: analyticsCache,
		log:            log,
	}
}

// GetAnalytics aggregates the dashboard counters. The summary is cached;
// a stale read within the TTL is acceptable for this surface.
func (s *adminService) GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	if cached, found := s.analyticsCache.Get(); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions := uow.ChatSessionRepository()

	total, err := sessions.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := sessions.Count(ctx, specification.ByStatus{Status: constant.ChatSessionStatusActive})
	if err != nil {
		return nil, err
	}
	escalated, err := sessions.Count(ctx, specification.ByStatus{Status: constant.ChatSessionStatusEscalated})
	if err != nil {
		return nil, err
	}
	closed, err := sessions.Count(ctx, specification.ByStatus{Status: constant.ChatSessionStatusClosed})
	if err != nil {
		return nil, err
	}
	messages, err := uow.ChatMessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := uow.KnowledgeEntryRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	avgRating, err := uow.FeedbackRepository().AverageRating(ctx)
	if err != nil {
		return nil, err
	}

	// Sessions that ever escalated count against the bot, including the
	// ones an agent has since closed. Escalation rate is their share of
	// all sessions.
	escalatedEver := escalated
	escalatedClosed, err := s.countClosedEscalated(ctx, uow)
	if err != nil {
		return nil, err
	}
	escalatedEver += escalatedClosed

	rate := 0.0
	if total > 0 {
		rate = float64(escalatedEver) / float64(total)
	}

	recent, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 10},
	)
	if err != nil {
		return nil, err
	}
	recentSummaries := make([]*dto.SessionSummary, 0, len(recent))
	for _, s := range recent {
		recentSummaries = append(recentSummaries, &dto.SessionSummary{
			Id:           s.Id,
			SessionToken: s.SessionToken,
			Status:       string(s.Status),
			CreatedAt:    s.CreatedAt,
			EscalatedAt:  s.EscalatedAt,
			ClosedAt:     s.ClosedAt,
		})
	}

	summary := &dto.AnalyticsResponse{
		TotalSessions:     total,
		ActiveSessions:    active,
		EscalatedSessions: escalated,
		ClosedSessions:    closed,
		TotalMessages:     messages,
		EscalationRate:    rate,
		AverageRating:     avgRating,
		KnowledgeEntries:  entries,
		RecentSessions:    recentSummaries,
	}
	s.analyticsCache.Save(summary)
	return summary, nil
}

func (s *adminService) countClosedEscalated(ctx context.Context, uow unitofwork.UnitOfWork) (int64, error) {
	closedSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByStatus{Status: constant.ChatSessionStatusClosed},
	)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, cs := range closedSessions {
		if cs.EscalatedAt != nil {
			n++
		}
	}
	return n, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	return response, nil
}

func (s *adminService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRole(req.Role),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	s.log.Info("admin", "user created", map[string]interface{}{
		"user_id": user.Id,
		"role":    user.Role,
	})
	return toUserResponse(&user), nil
}

func (s *adminService) UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = entity.UserRole(req.Role)
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	now := time.Now()
	user.UpdatedAt = &now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *adminService) DeleteUser(ctx context.Context, adminId uuid.UUID, id uuid.UUID) error {
	if adminId == id {
		return ErrSelfDeletion
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("admin", "user deleted", map[string]interface{}{
		"user_id": id,
	})
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
