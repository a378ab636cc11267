package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/activity"
)

type activityService interface {
	Generate(ctx context.Context, input activity.GenerateInput) (*domain.Activity, error)
	List(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
}

// ActivityHandler serves activity generation and catalogue endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type generateRequest struct {
	Age           int      `json:"age"`
	Subjects      []string `json:"subjects"`
	Intelligences []string `json:"intelligences"`
	Tools         []string `json:"tools"`
	ChildID       *string  `json:"child_id"`
}

// Generate handles POST /api/activities/generate.
func (h *ActivityHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.Generate(r.Context(), activity.GenerateInput{
		Age:           req.Age,
		Subjects:      req.Subjects,
		Intelligences: req.Intelligences,
		Tools:         req.Tools,
		ChildID:       req.ChildID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(a))
}

// List handles GET /api/activities?subject=&intelligence=&age=&child_id=.
// age=0 means no age filter.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f domain.ActivityFilter
	if v := q.Get("subject"); v != "" {
		f.Subject = &v
	}
	if v := q.Get("intelligence"); v != "" {
		f.Intelligence = &v
	}
	if v := q.Get("child_id"); v != "" {
		f.ChildID = &v
	}
	if v := q.Get("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("age", "must be an integer"))
			return
		}
		if age != 0 {
			f.Age = &age
		}
	}

	list, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toActivityResponse))
}

// Get handles GET /api/activities/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(a))
}
