package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type boardRepository struct {
	executor DBExecutor
}

func NewBoardRepository(db *sql.DB) *boardRepository {
	return &boardRepository{executor: db}
}

func NewBoardRepositoryWithTx(tx *sql.Tx) *boardRepository {
	return &boardRepository{executor: tx}
}

func (r *boardRepository) Create(ctx context.Context, board *domain.Board) error {
	query := `
		INSERT INTO boards (name, user_id, is_public, deadline, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	var deadline sql.NullTime
	if board.Deadline != nil {
		deadline = sql.NullTime{Time: *board.Deadline, Valid: true}
	}

	err := r.executor.QueryRowContext(
		ctx,
		query,
		board.Name,
		board.UserID,
		board.IsPublic,
		deadline,
		time.Now(),
	).Scan(&board.ID, &board.CreatedAt)

	return err
}

func (r *boardRepository) GetByID(ctx context.Context, id int) (*domain.Board, error) {
	query := `
		SELECT id, name, user_id, is_public, deadline, created_at, updated_at
		FROM boards
		WHERE id = $1
	`

	board := &domain.Board{}
	var deadline, updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.Name,
		&board.UserID,
		&board.IsPublic,
		&deadline,
		&board.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("board not found")
		}
		return nil, err
	}

	if deadline.Valid {
		board.Deadline = &deadline.Time
	}
	if updatedAt.Valid {
		board.UpdatedAt = &updatedAt.Time
	}

	return board, nil
}

func (r *boardRepository) GetPublic(ctx context.Context) ([]*domain.Board, error) {
	query := `
		SELECT id, name, user_id, is_public, deadline, created_at, updated_at
		FROM boards
		WHERE is_public = TRUE
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*domain.Board
	for rows.Next() {
		board := &domain.Board{}
		var deadline, updatedAt sql.NullTime
		err := rows.Scan(
			&board.ID,
			&board.Name,
			&board.UserID,
			&board.IsPublic,
			&deadline,
			&board.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if deadline.Valid {
			board.Deadline = &deadline.Time
		}
		if updatedAt.Valid {
			board.UpdatedAt = &updatedAt.Time
		}
		boards = append(boards, board)
	}

	return boards, rows.Err()
}

func (r *boardRepository) Update(ctx context.Context, board *domain.Board) error {
	query := `
		UPDATE boards
		SET name = $2, user_id = $3, is_public = $4, deadline = $5, updated_at = $6
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var deadline sql.NullTime
	if board.Deadline != nil {
		deadline = sql.NullTime{Time: *board.Deadline, Valid: true}
	}

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		board.ID,
		board.Name,
		board.UserID,
		board.IsPublic,
		deadline,
		time.Now(),
	).Scan(&board.CreatedAt, &updatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("board not found")
		}
		return err
	}

	if updatedAt.Valid {
		board.UpdatedAt = &updatedAt.Time
	}

	return nil
}

func (r *boardRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("board not found")
	}

	return nil
}
