package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/child"
	"github.com/heartmarshall/brightminds-backend/pkg/ctxutil"
)

type childService interface {
	Create(ctx context.Context, input child.ChildInput) (*domain.ChildProfile, error)
	List(ctx context.Context) ([]*domain.ChildProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ChildProfile, error)
	Update(ctx context.Context, id uuid.UUID, input child.ChildInput) (*domain.ChildProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChildHandler serves child profile endpoints. Every route requires a
// bearer token; the service enforces it.
type ChildHandler struct {
	svc childService
	log *slog.Logger
}

// NewChildHandler creates a ChildHandler.
func NewChildHandler(svc childService, logger *slog.Logger) *ChildHandler {
	return &ChildHandler{svc: svc, log: logger.With("handler", "child")}
}

type childRequest struct {
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Grade     *string  `json:"grade"`
	Interests []string `json:"interests"`
}

func (req childRequest) input() child.ChildInput {
	return child.ChildInput{
		Name:      req.Name,
		Age:       req.Age,
		Grade:     req.Grade,
		Interests: req.Interests,
	}
}

// Create handles POST /api/children.
func (h *ChildHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req childRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChildResponse(created))
}

// List handles GET /api/children.
func (h *ChildHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toChildResponse))
}

// Get handles GET /api/children/{id}.
func (h *ChildHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, r, h.log, unknownOwnedID(r))
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChildResponse(c))
}

// Update handles PUT /api/children/{id}. All mutable fields are replaced.
func (h *ChildHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, r, h.log, unknownOwnedID(r))
		return
	}

	var req childRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChildResponse(updated))
}

// Delete handles DELETE /api/children/{id}.
func (h *ChildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, r, h.log, unknownOwnedID(r))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Child profile deleted"})
}

// pathUUID parses a path wildcard as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	return id, err == nil
}

// unknownOwnedID is the error for an unparseable owner-scoped id: anonymous
// callers still get 401 before anything is said about the resource.
func unknownOwnedID(r *http.Request) error {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		return domain.ErrUnauthorized
	}
	return domain.ErrNotFound
}
