package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type AuthService interface {
	// Register создаёт пользователя с захэшированным паролем и выпускает токен
	Register(ctx context.Context, name, username, password string) (*domain.User, string, error)

	// Login проверяет пару логин/пароль и выпускает токен.
	// Несуществующий username и неверный пароль неразличимы для клиента
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}
