package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type todoService struct {
	todoRepo  repository.TodoRepository
	boardRepo repository.BoardRepository
}

func NewTodoService(todoRepo repository.TodoRepository, boardRepo repository.BoardRepository) TodoService {
	return &todoService{
		todoRepo:  todoRepo,
		boardRepo: boardRepo,
	}
}

func (s *todoService) AddToBoard(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if _, err := s.boardRepo.GetByID(ctx, todo.BoardID); err != nil {
		if err.Error() == "board not found" {
			return nil, domain.NewNotFoundError("board")
		}
		return nil, err
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *todoService) ListByBoard(ctx context.Context, boardID int) ([]*domain.Todo, error) {
	if _, err := s.boardRepo.GetByID(ctx, boardID); err != nil {
		if err.Error() == "board not found" {
			return nil, domain.NewNotFoundError("board")
		}
		return nil, err
	}

	return s.todoRepo.GetByBoardID(ctx, boardID)
}
