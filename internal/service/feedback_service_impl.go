package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	boardRepo    repository.BoardRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, boardRepo repository.BoardRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		boardRepo:    boardRepo,
	}
}

func (s *feedbackService) AddToBoard(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	if _, err := s.boardRepo.GetByID(ctx, feedback.BoardID); err != nil {
		if err.Error() == "board not found" {
			return nil, domain.NewNotFoundError("board")
		}
		return nil, err
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) ListByBoard(ctx context.Context, boardID int) ([]*domain.Feedback, error) {
	if _, err := s.boardRepo.GetByID(ctx, boardID); err != nil {
		if err.Error() == "board not found" {
			return nil, domain.NewNotFoundError("board")
		}
		return nil, err
	}

	return s.feedbackRepo.GetByBoardID(ctx, boardID)
}
