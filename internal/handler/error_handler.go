package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	// Текст ошибки хранилища наружу не отдаётся
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "VALIDATION_FAILED":
		return http.StatusBadRequest
	case "MISSING_TOKEN", "INVALID_TOKEN", "EXPIRED_TOKEN":
		return http.StatusUnauthorized
	case "FORBIDDEN", "PRIVATE_BOARD":
		return http.StatusForbidden
	case "INVALID_CREDENTIALS", "NOT_FOUND":
		return http.StatusNotFound
	case "USERNAME_EXISTS":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
