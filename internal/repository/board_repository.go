package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	GetByID(ctx context.Context, id int) (*domain.Board, error)
	GetPublic(ctx context.Context) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id int) error
}
