package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type BoardService interface {
	// Create сохраняет новую доску
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)

	// ListPublic возвращает только публичные доски
	ListPublic(ctx context.Context) ([]*domain.Board, error)

	// Get возвращает доску вместе с её задачами. Доступ не-владельца к
	// приватной доске определяется политикой: redact - доска отдаётся и
	// урезается на проекции, forbid - ErrPrivateBoard
	Get(ctx context.Context, id, viewerID int) (*domain.Board, []*domain.Todo, error)

	// Update изменяет доску. Разрешено только владельцу
	Update(ctx context.Context, board *domain.Board, viewerID int) (*domain.Board, error)

	// Delete удаляет доску. Разрешено только владельцу
	Delete(ctx context.Context, id, viewerID int) error
}
