package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBoardService_Get(t *testing.T) {
	privateBoard := &domain.Board{
		ID:        1,
		Name:      "roadmap",
		UserID:    7,
		IsPublic:  false,
		CreatedAt: time.Now(),
	}

	t.Run("владелец получает доску вместе с задачами", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		todos := []*domain.Todo{
			{ID: 1, Todo: "write spec", Completed: true, BoardID: 1},
			{ID: 2, Todo: "ship it", Completed: false, BoardID: 1},
		}

		ctx := context.Background()
		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(privateBoard, nil).Once()
		mockTodoRepo.On("GetByBoardID", mock.Anything, 1).Return(todos, nil).Once()

		board, gotTodos, err := service.Get(ctx, 1, 7)

		require.NoError(t, err)
		assert.Equal(t, 1, board.ID)
		assert.Len(t, gotTodos, 2)
		mockBoardRepo.AssertExpectations(t)
		mockTodoRepo.AssertExpectations(t)
	})

	t.Run("политика redact: чужая приватная доска отдаётся без задач", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(privateBoard, nil).Once()

		board, todos, err := service.Get(context.Background(), 1, 99)

		require.NoError(t, err)
		assert.Equal(t, 1, board.ID)
		// Содержимое приватной доски не должно утекать не-владельцу
		assert.Empty(t, todos)
		mockBoardRepo.AssertExpectations(t)
		mockTodoRepo.AssertNotCalled(t, "GetByBoardID", mock.Anything, 1)
	})

	t.Run("политика forbid: чужая приватная доска отклоняется", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyForbid)

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(privateBoard, nil).Once()

		board, todos, err := service.Get(context.Background(), 1, 99)

		require.Error(t, err)
		assert.Nil(t, board)
		assert.Nil(t, todos)
		assert.True(t, errors.Is(err, domain.ErrPrivateBoard))
		mockBoardRepo.AssertExpectations(t)
	})

	t.Run("ошибка: доска не найдена", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		mockBoardRepo.On("GetByID", mock.Anything, 404).Return(nil, errors.New("board not found")).Once()

		_, _, err := service.Get(context.Background(), 404, 7)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		mockBoardRepo.AssertExpectations(t)
	})
}

func TestBoardService_Update(t *testing.T) {
	existing := &domain.Board{ID: 1, Name: "roadmap", UserID: 7, IsPublic: true}

	t.Run("владелец обновляет доску", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		update := &domain.Board{ID: 1, Name: "roadmap v2", UserID: 7, IsPublic: false}

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(existing, nil).Once()
		mockBoardRepo.On("Update", mock.Anything, update).Return(nil).Once()

		board, err := service.Update(context.Background(), update, 7)

		require.NoError(t, err)
		assert.Equal(t, "roadmap v2", board.Name)
		mockBoardRepo.AssertExpectations(t)
	})

	t.Run("не-владелец получает FORBIDDEN", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		update := &domain.Board{ID: 1, Name: "hijacked", UserID: 99, IsPublic: true}

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(existing, nil).Once()

		board, err := service.Update(context.Background(), update, 99)

		require.Error(t, err)
		assert.Nil(t, board)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		mockBoardRepo.AssertExpectations(t)
	})
}

func TestBoardService_Delete(t *testing.T) {
	existing := &domain.Board{ID: 1, Name: "roadmap", UserID: 7, IsPublic: true}

	t.Run("владелец удаляет доску", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(existing, nil).Once()
		mockBoardRepo.On("Delete", mock.Anything, 1).Return(nil).Once()

		err := service.Delete(context.Background(), 1, 7)

		require.NoError(t, err)
		mockBoardRepo.AssertExpectations(t)
	})

	t.Run("не-владелец получает FORBIDDEN, удаления не происходит", func(t *testing.T) {
		mockBoardRepo := new(MockBoardRepository)
		mockTodoRepo := new(MockTodoRepository)
		service := NewBoardService(mockBoardRepo, mockTodoRepo, domain.PolicyRedact)

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(existing, nil).Once()

		err := service.Delete(context.Background(), 1, 99)

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		mockBoardRepo.AssertExpectations(t)
		mockBoardRepo.AssertNotCalled(t, "Delete", mock.Anything, 1)
	})
}

func TestTodoService_AddToBoard(t *testing.T) {
	t.Run("задача добавляется на существующую доску", func(t *testing.T) {
		mockTodoRepo := new(MockTodoRepository)
		mockBoardRepo := new(MockBoardRepository)
		service := NewTodoService(mockTodoRepo, mockBoardRepo)

		board := &domain.Board{ID: 1, Name: "roadmap", UserID: 7, IsPublic: true}
		todo := &domain.Todo{Todo: "write tests", BoardID: 1}

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(board, nil).Once()
		mockTodoRepo.On("Create", mock.Anything, todo).Return(nil).Once()

		created, err := service.AddToBoard(context.Background(), todo)

		require.NoError(t, err)
		assert.Equal(t, "write tests", created.Todo)
		mockBoardRepo.AssertExpectations(t)
		mockTodoRepo.AssertExpectations(t)
	})

	t.Run("ошибка: доска не существует", func(t *testing.T) {
		mockTodoRepo := new(MockTodoRepository)
		mockBoardRepo := new(MockBoardRepository)
		service := NewTodoService(mockTodoRepo, mockBoardRepo)

		mockBoardRepo.On("GetByID", mock.Anything, 404).Return(nil, errors.New("board not found")).Once()

		created, err := service.AddToBoard(context.Background(), &domain.Todo{Todo: "x", BoardID: 404})

		require.Error(t, err)
		assert.Nil(t, created)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		mockTodoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFeedbackService_ListByBoard(t *testing.T) {
	t.Run("отзывы возвращаются в порядке создания", func(t *testing.T) {
		mockFeedbackRepo := new(MockFeedbackRepository)
		mockBoardRepo := new(MockBoardRepository)
		service := NewFeedbackService(mockFeedbackRepo, mockBoardRepo)

		board := &domain.Board{ID: 1, Name: "roadmap", UserID: 7, IsPublic: true}
		feedbacks := []*domain.Feedback{
			{ID: 1, Description: "nice", BoardID: 1},
			{ID: 2, Description: "needs work", BoardID: 1},
		}

		mockBoardRepo.On("GetByID", mock.Anything, 1).Return(board, nil).Once()
		mockFeedbackRepo.On("GetByBoardID", mock.Anything, 1).Return(feedbacks, nil).Once()

		got, err := service.ListByBoard(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "nice", got[0].Description)
		mockBoardRepo.AssertExpectations(t)
		mockFeedbackRepo.AssertExpectations(t)
	})
}
