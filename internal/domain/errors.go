package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - тело запроса не прошло валидацию
	ErrValidation = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "request body failed validation",
	}

	// ErrMissingToken - в запросе нет токена
	ErrMissingToken = &DomainError{
		Code:    "MISSING_TOKEN",
		Message: "authorization token is missing",
	}

	// ErrInvalidToken - токен повреждён или подпись не сходится
	ErrInvalidToken = &DomainError{
		Code:    "INVALID_TOKEN",
		Message: "authorization token is invalid",
	}

	// ErrExpiredToken - срок действия токена истёк
	ErrExpiredToken = &DomainError{
		Code:    "EXPIRED_TOKEN",
		Message: "authorization token has expired",
	}

	// ErrInvalidCredentials - неверная пара логин/пароль
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid credentials",
	}

	// ErrUsernameExists - username уже занят
	ErrUsernameExists = &DomainError{
		Code:    "USERNAME_EXISTS",
		Message: "username already exists",
	}

	// ErrForbidden - действие разрешено только владельцу доски
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "only the board owner may perform this action",
	}

	// ErrPrivateBoard - приватная доска закрыта для остальных (политика forbid)
	ErrPrivateBoard = &DomainError{
		Code:    "PRIVATE_BOARD",
		Message: "board is private",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_FAILED с описанием поля
func NewValidationError(detail string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: detail,
	}
}
