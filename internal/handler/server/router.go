package server

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)

	mux.HandleFunc("POST /boards", h.Authenticate(h.CreateBoard))
	mux.HandleFunc("GET /boards", h.Authenticate(h.ListBoards))
	mux.HandleFunc("GET /boards/{id}", h.Authenticate(h.GetBoard))
	mux.HandleFunc("PUT /boards/{id}", h.Authenticate(h.UpdateBoard))
	mux.HandleFunc("DELETE /boards/{id}", h.Authenticate(h.DeleteBoard))
	mux.HandleFunc("POST /boards/{id}/feedback", h.Authenticate(h.CreateFeedback))
	mux.HandleFunc("GET /boards/{id}/feedback", h.Authenticate(h.ListFeedback))
	mux.HandleFunc("POST /boards/{id}/todos", h.Authenticate(h.CreateTodo))
	mux.HandleFunc("GET /boards/{id}/todos", h.Authenticate(h.ListTodos))
}
