package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type boardService struct {
	boardRepo repository.BoardRepository
	todoRepo  repository.TodoRepository
	policy    domain.PrivateBoardPolicy
}

func NewBoardService(
	boardRepo repository.BoardRepository,
	todoRepo repository.TodoRepository,
	policy domain.PrivateBoardPolicy,
) BoardService {
	return &boardService{
		boardRepo: boardRepo,
		todoRepo:  todoRepo,
		policy:    policy,
	}
}

func (s *boardService) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *boardService) ListPublic(ctx context.Context) ([]*domain.Board, error) {
	return s.boardRepo.GetPublic(ctx)
}

func (s *boardService) Get(ctx context.Context, id, viewerID int) (*domain.Board, []*domain.Todo, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "board not found" {
			return nil, nil, domain.NewNotFoundError("board")
		}
		return nil, nil, err
	}

	// Флаг видимости перечитывается на каждом запросе, решение не кэшируется
	if !board.IsPublic && board.UserID != viewerID {
		if s.policy == domain.PolicyForbid {
			return nil, nil, domain.ErrPrivateBoard
		}
		// Под redact не-владелец получает заглушку доски без её задач
		return board, nil, nil
	}

	todos, err := s.todoRepo.GetByBoardID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return board, todos, nil
}

func (s *boardService) Update(ctx context.Context, board *domain.Board, viewerID int) (*domain.Board, error) {
	existing, err := s.boardRepo.GetByID(ctx, board.ID)
	if err != nil {
		if err.Error() == "board not found" {
			return nil, domain.NewNotFoundError("board")
		}
		return nil, err
	}

	if existing.UserID != viewerID {
		return nil, domain.ErrForbidden
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		if err.Error() == "board not found" {
			return nil, domain.NewNotFoundError("board")
		}
		return nil, err
	}

	return board, nil
}

func (s *boardService) Delete(ctx context.Context, id, viewerID int) error {
	existing, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "board not found" {
			return domain.NewNotFoundError("board")
		}
		return err
	}

	if existing.UserID != viewerID {
		return domain.ErrForbidden
	}

	if err := s.boardRepo.Delete(ctx, id); err != nil {
		if err.Error() == "board not found" {
			return domain.NewNotFoundError("board")
		}
		return err
	}

	return nil
}
