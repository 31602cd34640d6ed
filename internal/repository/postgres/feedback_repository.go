package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type feedbackRepository struct {
	executor DBExecutor
}

func NewFeedbackRepository(db *sql.DB) *feedbackRepository {
	return &feedbackRepository{executor: db}
}

func NewFeedbackRepositoryWithTx(tx *sql.Tx) *feedbackRepository {
	return &feedbackRepository{executor: tx}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback (description, board_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		feedback.Description,
		feedback.BoardID,
		time.Now(),
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) GetByBoardID(ctx context.Context, boardID int) ([]*domain.Feedback, error) {
	query := `
		SELECT id, description, board_id, created_at
		FROM feedback
		WHERE board_id = $1
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*domain.Feedback
	for rows.Next() {
		feedback := &domain.Feedback{}
		err := rows.Scan(
			&feedback.ID,
			&feedback.Description,
			&feedback.BoardID,
			&feedback.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, feedback)
	}

	return feedbacks, rows.Err()
}
