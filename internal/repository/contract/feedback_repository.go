package contract

import (
	"context"

	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/repository/specification"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	AverageRating(ctx context.Context) (float64, error)
}
