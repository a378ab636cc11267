package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/artifact"
)

// maxMultipartMemory is kept in memory before parts spill to temp files.
const maxMultipartMemory = 32 << 20

const defaultContentType = "application/octet-stream"

type artifactService interface {
	Upload(ctx context.Context, input artifact.UploadInput) (uuid.UUID, error)
	List(ctx context.Context, activityID string) ([]*domain.Artifact, error)
}

// ArtifactHandler serves artifact upload and listing.
type ArtifactHandler struct {
	svc artifactService
	log *slog.Logger
}

// NewArtifactHandler creates an ArtifactHandler.
func NewArtifactHandler(svc artifactService, logger *slog.Logger) *ArtifactHandler {
	return &ArtifactHandler{svc: svc, log: logger.With("handler", "artifact")}
}

// Upload handles POST /api/artifacts (multipart: activity_id, child_id?, file).
func (h *ArtifactHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			respondError(w, r, h.log, domain.NewValidationError("file", "required"))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid file part")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := artifact.UploadInput{
		ActivityID:  r.FormValue("activity_id"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	if input.ContentType == "" {
		input.ContentType = defaultContentType
	}
	if v := r.FormValue("child_id"); v != "" {
		input.ChildID = &v
	}

	id, err := h.svc.Upload(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, createdResponse{ID: id.String(), Message: "Artifact uploaded successfully"})
}

// List handles GET /api/artifacts/{activity_id}.
func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), r.PathValue("activity_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapList(list, toArtifactResponse))
}
