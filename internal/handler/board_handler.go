package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/token"
)

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (*token.Claims, bool) {
	claims, ok := IdentityFromContext(r.Context())
	if !ok {
		h.handleError(w, domain.ErrMissingToken)
		return nil, false
	}
	return claims, true
}

func boardIDFromPath(r *http.Request) (int, *domain.DomainError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, domain.NewValidationError("board id must be an integer")
	}
	return id, nil
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req BoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		h.handleError(w, err)
		return
	}

	// Владелец берётся из токена; user_id в теле допускается только свой
	if req.UserID != 0 && req.UserID != claims.UserID {
		h.handleError(w, domain.NewValidationError("user_id does not match the authenticated user"))
		return
	}

	board := &domain.Board{
		Name:     req.Name,
		UserID:   claims.UserID,
		IsPublic: *req.IsPublic,
		Deadline: req.Deadline,
	}

	created, err := h.boardService.Create(r.Context(), board)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateBoardResponse{
		Board: *projectBoard(created, claims.UserID),
	})
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	boards, err := h.boardService.ListPublic(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if len(boards) == 0 {
		json.NewEncoder(w).Encode(EmptyListResponse{Message: "Found 0 public boards"})
		return
	}

	json.NewEncoder(w).Encode(BoardListResponse{
		Boards: projectBoards(boards, claims.UserID),
	})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	board, todos, err := h.boardService.Get(r.Context(), id, claims.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(BoardDetailResponse{
		Board: *projectBoard(board, claims.UserID),
		Todos: projectTodos(todos),
	})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	var req BoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		h.handleError(w, err)
		return
	}

	// Как и при создании: user_id в теле допускается только свой
	if req.UserID != 0 && req.UserID != claims.UserID {
		h.handleError(w, domain.NewValidationError("user_id does not match the authenticated user"))
		return
	}

	board := &domain.Board{
		ID:       id,
		Name:     req.Name,
		UserID:   claims.UserID,
		IsPublic: *req.IsPublic,
		Deadline: req.Deadline,
	}

	updated, err := h.boardService.Update(r.Context(), board, claims.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CreateBoardResponse{
		Board: *projectBoard(updated, claims.UserID),
	})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	if err := h.boardService.Delete(r.Context(), id, claims.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Message: "Board Deleted"})
}
