package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type todoRepository struct {
	executor DBExecutor
}

func NewTodoRepository(db *sql.DB) *todoRepository {
	return &todoRepository{executor: db}
}

func NewTodoRepositoryWithTx(tx *sql.Tx) *todoRepository {
	return &todoRepository{executor: tx}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	query := `
		INSERT INTO todos (todo, completed, board_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		todo.Todo,
		todo.Completed,
		todo.BoardID,
		time.Now(),
	).Scan(&todo.ID, &todo.CreatedAt)
}

func (r *todoRepository) GetByBoardID(ctx context.Context, boardID int) ([]*domain.Todo, error) {
	query := `
		SELECT id, todo, completed, board_id, created_at
		FROM todos
		WHERE board_id = $1
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*domain.Todo
	for rows.Next() {
		todo := &domain.Todo{}
		err := rows.Scan(
			&todo.ID,
			&todo.Todo,
			&todo.Completed,
			&todo.BoardID,
			&todo.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}
