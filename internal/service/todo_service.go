package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TodoService interface {
	// AddToBoard добавляет задачу на существующую доску
	AddToBoard(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)

	// ListByBoard возвращает задачи доски в порядке создания
	ListByBoard(ctx context.Context, boardID int) ([]*domain.Todo, error)
}
