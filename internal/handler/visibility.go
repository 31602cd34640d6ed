package handler

import "github.com/bagdasarian/taskboard/internal/domain"

const (
	statusComplete   = "complete"
	statusIncomplete = "incomplete"
)

// projectBoard строит проекцию доски для конкретного зрителя. Приватная
// доска для не-владельца сохраняет id, name и isPublic, чтобы клиент мог
// отрисовать заглушку, но не содержимое. Решение принимается заново на
// каждом вызове
func projectBoard(board *domain.Board, viewerID int) *BoardView {
	if board == nil {
		return nil
	}

	view := &BoardView{
		ID:       board.ID,
		Name:     board.Name,
		IsPublic: board.IsPublic,
	}

	if !board.IsPublic && board.UserID != viewerID {
		return view
	}

	userID := board.UserID
	createdAt := board.CreatedAt
	view.UserID = &userID
	view.Deadline = board.Deadline
	view.CreatedAt = &createdAt
	view.UpdatedAt = board.UpdatedAt

	return view
}

func projectBoards(boards []*domain.Board, viewerID int) []BoardView {
	views := make([]BoardView, 0, len(boards))
	for _, board := range boards {
		if view := projectBoard(board, viewerID); view != nil {
			views = append(views, *view)
		}
	}
	return views
}

// projectTodo помечает задачу статусом, выведенным из флага completed
func projectTodo(todo *domain.Todo) *TodoView {
	if todo == nil {
		return nil
	}

	status := statusIncomplete
	if todo.Completed {
		status = statusComplete
	}

	return &TodoView{
		ID:        todo.ID,
		Todo:      todo.Todo,
		Completed: todo.Completed,
		Status:    status,
		BoardID:   todo.BoardID,
	}
}

func projectTodos(todos []*domain.Todo) []TodoView {
	views := make([]TodoView, 0, len(todos))
	for _, todo := range todos {
		if view := projectTodo(todo); view != nil {
			views = append(views, *view)
		}
	}
	return views
}
