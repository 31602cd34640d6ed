package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type FeedbackService interface {
	// AddToBoard добавляет отзыв к существующей доске
	AddToBoard(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)

	// ListByBoard возвращает отзывы доски в порядке создания
	ListByBoard(ctx context.Context, boardID int) ([]*domain.Feedback, error)
}
