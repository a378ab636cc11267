package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/feedback"
)

type feedbackService interface {
	Submit(ctx context.Context, input feedback.SubmitInput) (uuid.UUID, error)
	List(ctx context.Context, activityID string) ([]*domain.Feedback, error)
}

// FeedbackHandler serves feedback endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type feedbackRequest struct {
	ActivityID  string  `json:"activity_id"`
	ChildID     *string `json:"child_id"`
	Rating      *int    `json:"rating"`
	Experience  *string `json:"experience"`
	Outcomes    *string `json:"outcomes"`
	Suggestions *string `json:"suggestions"`
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.svc.Submit(r.Context(), feedback.SubmitInput{
		ActivityID:  req.ActivityID,
		ChildID:     req.ChildID,
		Rating:      req.Rating,
		Experience:  req.Experience,
		Outcomes:    req.Outcomes,
		Suggestions: req.Suggestions,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, createdResponse{ID: id.String(), Message: "Feedback submitted successfully"})
}

// List handles GET /api/feedback/{activity_id}.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), r.PathValue("activity_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toFeedbackResponse))
}
