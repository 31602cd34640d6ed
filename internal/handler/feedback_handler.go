package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
)

func feedbackToHTTP(feedback *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          feedback.ID,
		Description: feedback.Description,
		BoardID:     feedback.BoardID,
		CreatedAt:   feedback.CreatedAt,
	}
}

func (h *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.identity(w, r); !ok {
		return
	}

	boardID, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		h.handleError(w, err)
		return
	}

	feedback := &domain.Feedback{
		Description: req.Description,
		BoardID:     boardID,
	}

	created, err := h.feedbackService.AddToBoard(r.Context(), feedback)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateFeedbackResponse{
		Message:  "Feedback added successfully",
		Feedback: feedbackToHTTP(created),
	})
}

func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.identity(w, r); !ok {
		return
	}

	boardID, derr := boardIDFromPath(r)
	if derr != nil {
		h.handleError(w, derr)
		return
	}

	feedbacks, err := h.feedbackService.ListByBoard(r.Context(), boardID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]FeedbackResponse, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		responses = append(responses, feedbackToHTTP(feedback))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responses)
}
