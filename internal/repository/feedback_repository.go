package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	GetByBoardID(ctx context.Context, boardID int) ([]*domain.Feedback, error)
}
