package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/token"
	"github.com/stretchr/testify/assert"
)

type stubBoardService struct {
	board        *domain.Board
	todos        []*domain.Todo
	updateCalled bool
}

func (s *stubBoardService) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	return board, nil
}

func (s *stubBoardService) ListPublic(ctx context.Context) ([]*domain.Board, error) {
	return nil, nil
}

func (s *stubBoardService) Get(ctx context.Context, id, viewerID int) (*domain.Board, []*domain.Todo, error) {
	return s.board, s.todos, nil
}

func (s *stubBoardService) Update(ctx context.Context, board *domain.Board, viewerID int) (*domain.Board, error) {
	s.updateCalled = true
	return board, nil
}

func (s *stubBoardService) Delete(ctx context.Context, id, viewerID int) error {
	return nil
}

func authedRequest(method, target, body string, claims *token.Claims) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.SetPathValue("id", "1")
	return req.WithContext(context.WithValue(req.Context(), identityKey, claims))
}

func TestUpdateBoard_BodyUserID(t *testing.T) {
	t.Run("чужой user_id в теле отклоняется до вызова сервиса", func(t *testing.T) {
		stub := &stubBoardService{}
		h := NewHandler(nil, stub, nil, nil, nil)

		req := authedRequest(http.MethodPut, "/boards/1",
			`{"name":"roadmap","isPublic":true,"user_id":99}`,
			&token.Claims{UserID: 7, Username: "alice"})
		rec := httptest.NewRecorder()
		h.UpdateBoard(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
		assert.False(t, stub.updateCalled)
	})

	t.Run("свой user_id в теле принимается", func(t *testing.T) {
		stub := &stubBoardService{}
		h := NewHandler(nil, stub, nil, nil, nil)

		req := authedRequest(http.MethodPut, "/boards/1",
			`{"name":"roadmap","isPublic":true,"user_id":7}`,
			&token.Claims{UserID: 7, Username: "alice"})
		rec := httptest.NewRecorder()
		h.UpdateBoard(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, stub.updateCalled)
	})
}
