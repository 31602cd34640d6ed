package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor покрывает *sql.DB и *sql.Tx, чтобы репозиторий работал и в транзакции
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
