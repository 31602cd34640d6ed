package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/token"
)

type contextKey struct{}

var identityKey = contextKey{}

// Authenticate проверяет Bearer-токен и кладёт claims в контекст запроса.
// Любой сбой проверки завершает запрос до хендлера, повторов нет
func (h *Handler) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.handleError(w, domain.ErrMissingToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			h.handleError(w, domain.ErrInvalidToken)
			return
		}

		claims, err := h.tokens.Verify(tokenString)
		if err != nil {
			h.handleError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// IdentityFromContext возвращает claims, положенные Authenticate
func IdentityFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(identityKey).(*token.Claims)
	return claims, ok
}
