package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoRepository_Create(t *testing.T) {
	t.Run("успешное добавление задачи", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewTodoRepository(db)

		todo := &domain.Todo{
			Todo:      "write tests",
			Completed: false,
			BoardID:   3,
		}

		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now())
		mock.ExpectQuery("INSERT INTO todos").
			WithArgs("write tests", false, 3, sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(context.Background(), todo)

		require.NoError(t, err)
		assert.Equal(t, 11, todo.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTodoRepository_GetByBoardID(t *testing.T) {
	t.Run("задачи доски в порядке создания", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewTodoRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "todo", "completed", "board_id", "created_at"}).
			AddRow(1, "first", true, 3, now.Add(-time.Minute)).
			AddRow(2, "second", false, 3, now)
		mock.ExpectQuery("SELECT (.+) FROM todos").
			WithArgs(3).
			WillReturnRows(rows)

		todos, err := repo.GetByBoardID(context.Background(), 3)

		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.True(t, todos[0].Completed)
		assert.False(t, todos[1].Completed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeedbackRepository_Create(t *testing.T) {
	t.Run("успешное добавление отзыва", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFeedbackRepository(db)

		feedback := &domain.Feedback{
			Description: "looks great",
			BoardID:     3,
		}

		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, time.Now())
		mock.ExpectQuery("INSERT INTO feedback").
			WithArgs("looks great", 3, sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(context.Background(), feedback)

		require.NoError(t, err)
		assert.Equal(t, 4, feedback.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
