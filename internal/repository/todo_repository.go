package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	GetByBoardID(ctx context.Context, boardID int) ([]*domain.Todo, error)
}
