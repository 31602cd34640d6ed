package domain

import "time"

type Board struct {
	ID        int
	Name      string
	UserID    int
	IsPublic  bool
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// PrivateBoardPolicy определяет, что видит не-владелец приватной доски
type PrivateBoardPolicy string

const (
	// PolicyRedact - доска отдаётся, приватные поля вырезаются на проекции
	PolicyRedact PrivateBoardPolicy = "redact"
	// PolicyForbid - запрос не-владельца отклоняется целиком
	PolicyForbid PrivateBoardPolicy = "forbid"
)
