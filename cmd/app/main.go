package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/taskboard/internal/config"
	"github.com/bagdasarian/taskboard/internal/db"
	"github.com/bagdasarian/taskboard/internal/handler"
	"github.com/bagdasarian/taskboard/internal/handler/server"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/service"
	"github.com/bagdasarian/taskboard/internal/token"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	userRepo := postgres.NewUserRepository(database)
	boardRepo := postgres.NewBoardRepository(database)
	todoRepo := postgres.NewTodoRepository(database)
	feedbackRepo := postgres.NewFeedbackRepository(database)

	tokens := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	boardService := service.NewBoardService(boardRepo, todoRepo, cfg.Auth.PrivateBoardPolicy)
	todoService := service.NewTodoService(todoRepo, boardRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, boardRepo)

	h := handler.NewHandler(authService, boardService, todoService, feedbackService, tokens)
	srv := server.NewServer(h, ":"+cfg.HTTPPort)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
