// Package child manages child profiles owned by the authenticated user.
package child

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/pkg/ctxutil"
)

// childRepo defines the profile repository interface needed by child service.
type childRepo interface {
	Create(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ChildProfile, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.ChildProfile, error)
	Update(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service implements child profile operations.
type Service struct {
	log      *slog.Logger
	children childRepo
}

// NewService creates a new child service instance.
func NewService(logger *slog.Logger, children childRepo) *Service {
	return &Service{
		log:      logger.With("service", "child"),
		children: children,
	}
}

// Create stores a new profile for the caller.
func (s *Service) Create(ctx context.Context, input ChildInput) (*domain.ChildProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.children.Create(ctx, &domain.ChildProfile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Age:       input.Age,
		Grade:     input.Grade,
		Interests: input.interests(),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("child.Create: %w", err)
	}

	s.log.InfoContext(ctx, "child profile created",
		slog.String("user_id", userID.String()),
		slog.String("child_id", created.ID.String()))

	return created, nil
}

// List returns the caller's profiles, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.ChildProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.children.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("child.List: %w", err)
	}
	return list, nil
}

// Get returns one of the caller's profiles. Profiles of other users are
// reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ChildProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.children.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("child.Get: %w", err)
	}
	return c, nil
}

// Update overwrites name, age, grade and interests. Absent grade and
// interests are cleared.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input ChildInput) (*domain.ChildProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.children.Update(ctx, &domain.ChildProfile{
		ID:        id,
		UserID:    userID,
		Name:      input.Name,
		Age:       input.Age,
		Grade:     input.Grade,
		Interests: input.interests(),
	})
	if err != nil {
		return nil, fmt.Errorf("child.Update: %w", err)
	}

	s.log.InfoContext(ctx, "child profile updated", slog.String("child_id", id.String()))

	return updated, nil
}

// Delete removes one of the caller's profiles.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.children.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("child.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "child profile deleted", slog.String("child_id", id.String()))

	return nil
}
