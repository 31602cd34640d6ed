package handler

import (
	"github.com/bagdasarian/taskboard/internal/service"
	"github.com/bagdasarian/taskboard/internal/token"
)

type Handler struct {
	authService     service.AuthService
	boardService    service.BoardService
	todoService     service.TodoService
	feedbackService service.FeedbackService
	tokens          *token.Service
}

func NewHandler(
	authService service.AuthService,
	boardService service.BoardService,
	todoService service.TodoService,
	feedbackService service.FeedbackService,
	tokens *token.Service,
) *Handler {
	return &Handler{
		authService:     authService,
		boardService:    boardService,
		todoService:     todoService,
		feedbackService: feedbackService,
		tokens:          tokens,
	}
}
