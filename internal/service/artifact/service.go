// Package artifact stores files uploaded against activities.
package artifact

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// listCap is the fetch ceiling for one activity's artifacts.
const listCap = 100

type artifactRepo interface {
	Create(ctx context.Context, a *domain.Artifact) error
	ListByActivity(ctx context.Context, activityID string, limit uint64) ([]*domain.Artifact, error)
}

// Service implements artifact upload and listing.
type Service struct {
	log       *slog.Logger
	artifacts artifactRepo
}

// NewService creates a new artifact service instance.
func NewService(logger *slog.Logger, artifacts artifactRepo) *Service {
	return &Service{
		log:       logger.With("service", "artifact"),
		artifacts: artifacts,
	}
}

// UploadInput is one uploaded file. Size and content type are not checked.
type UploadInput struct {
	ActivityID  string
	ChildID     *string
	Filename    string
	ContentType string
	Data        []byte
}

// Validate validates the upload.
func (i UploadInput) Validate() error {
	if i.ActivityID == "" {
		return domain.NewValidationError("activity_id", "required")
	}
	return nil
}

// Upload stores the file as standard base64 and returns the artifact id.
func (s *Service) Upload(ctx context.Context, input UploadInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	a := &domain.Artifact{
		ID:          uuid.New(),
		ActivityID:  input.ActivityID,
		ChildID:     domain.NormalizeRef(input.ChildID),
		Filename:    input.Filename,
		ContentType: input.ContentType,
		FileData:    base64.StdEncoding.EncodeToString(input.Data),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.artifacts.Create(ctx, a); err != nil {
		return uuid.Nil, fmt.Errorf("artifact.Upload: %w", err)
	}

	s.log.InfoContext(ctx, "artifact uploaded",
		slog.String("artifact_id", a.ID.String()),
		slog.String("activity_id", a.ActivityID),
		slog.Int("size", len(input.Data)))

	return a.ID, nil
}

// List returns an activity's artifacts in upload order, payloads included.
func (s *Service) List(ctx context.Context, activityID string) ([]*domain.Artifact, error) {
	list, err := s.artifacts.ListByActivity(ctx, activityID, listCap)
	if err != nil {
		return nil, fmt.Errorf("artifact.List: %w", err)
	}
	return list, nil
}
