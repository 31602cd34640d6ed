package token

import (
	"errors"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims - данные, зашитые в подписанный токен
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service выпускает и проверяет JWT. Секрет и TTL передаются явно,
// чтобы каждый тест мог работать со своим ключом
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// NewServiceWithClock используется тестами, которым нужно управлять временем
func NewServiceWithClock(secret string, ttl time.Duration, now func() time.Time) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue выпускает токен для пользователя. Чистая функция от входа, секрета и часов
func (s *Service) Issue(user *domain.User) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify возвращает claims, если подпись сходится и срок не истёк.
// Истёкший токен - ErrExpiredToken, всё остальное - ErrInvalidToken
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
