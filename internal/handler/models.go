package handler

import (
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) validate() *domain.DomainError {
	if r.Name == "" {
		return domain.NewValidationError("name is required")
	}
	if r.Username == "" {
		return domain.NewValidationError("username is required")
	}
	if r.Password == "" {
		return domain.NewValidationError("password is required")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) validate() *domain.DomainError {
	if r.Username == "" {
		return domain.NewValidationError("username is required")
	}
	if r.Password == "" {
		return domain.NewValidationError("password is required")
	}
	return nil
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type BoardRequest struct {
	Name     string     `json:"name"`
	UserID   int        `json:"user_id"`
	IsPublic *bool      `json:"isPublic"`
	Deadline *time.Time `json:"deadline"`
}

func (r BoardRequest) validate() *domain.DomainError {
	if r.Name == "" {
		return domain.NewValidationError("name is required")
	}
	if r.IsPublic == nil {
		return domain.NewValidationError("isPublic is required")
	}
	return nil
}

// BoardView - проекция доски для выдачи наружу. Для приватной доски
// не-владелец видит только id, name и isPublic, остальные поля вырезаются
type BoardView struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	IsPublic  bool       `json:"isPublic"`
	UserID    *int       `json:"user_id,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateBoardResponse struct {
	Board BoardView `json:"board"`
}

type BoardListResponse struct {
	Boards []BoardView `json:"boards"`
}

type EmptyListResponse struct {
	Message string `json:"message"`
}

type BoardDetailResponse struct {
	Board BoardView  `json:"board"`
	Todos []TodoView `json:"todos"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TodoRequest struct {
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	BoardID   int    `json:"board_id"`
}

func (r TodoRequest) validate() *domain.DomainError {
	if r.Todo == "" {
		return domain.NewValidationError("todo is required")
	}
	return nil
}

// TodoView помечает каждую задачу статусом, выведенным из флага completed
type TodoView struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	Status    string `json:"status"`
	BoardID   int    `json:"board_id"`
}

type CreateTodoResponse struct {
	Message string   `json:"message"`
	Todo    TodoView `json:"todo"`
}

type FeedbackRequest struct {
	Description string `json:"description"`
}

func (r FeedbackRequest) validate() *domain.DomainError {
	if r.Description == "" {
		return domain.NewValidationError("description is required")
	}
	return nil
}

type FeedbackResponse struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	BoardID     int       `json:"board_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateFeedbackResponse struct {
	Message  string           `json:"message"`
	Feedback FeedbackResponse `json:"feedback"`
}
