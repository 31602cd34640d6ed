package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
)

func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.identity(w, r); !ok {
		return
	}

	boardID, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		h.handleError(w, err)
		return
	}

	// board_id в теле обязан совпадать с id из пути
	if req.BoardID != 0 && req.BoardID != boardID {
		h.handleError(w, domain.NewValidationError("board_id does not match the path"))
		return
	}

	todo := &domain.Todo{
		Todo:      req.Todo,
		Completed: req.Completed,
		BoardID:   boardID,
	}

	created, err := h.todoService.AddToBoard(r.Context(), todo)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTodoResponse{
		Message: "Todo added successfully",
		Todo:    *projectTodo(created),
	})
}

func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.identity(w, r); !ok {
		return
	}

	boardID, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	todos, err := h.todoService.ListByBoard(r.Context(), boardID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(projectTodos(todos))
}
