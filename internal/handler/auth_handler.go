package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		h.handleError(w, err)
		return
	}

	user, tokenString, err := h.authService.Register(r.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AuthResponse{
		Message: fmt.Sprintf("Welcome %s!", user.Username),
		Token:   tokenString,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		h.handleError(w, err)
		return
	}

	user, tokenString, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AuthResponse{
		Message: fmt.Sprintf("Welcome %s", user.Username),
		Token:   tokenString,
	})
}
