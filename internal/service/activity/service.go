// Package activity generates learning activities with a completion provider
// and serves the stored catalogue.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// activityRepo defines the activity repository interface needed by activity service.
type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error)
}

// completer sends one system + user prompt pair to a language model.
type completer interface {
	Complete(ctx context.Context, model, system, prompt string) (string, error)
}

// Service implements activity generation and lookup.
type Service struct {
	log        *slog.Logger
	activities activityRepo
	llm        completer
	model      string
}

// NewService creates a new activity service instance. model is passed to the
// completer on every generation.
func NewService(logger *slog.Logger, activities activityRepo, llm completer, model string) *Service {
	return &Service{
		log:        logger.With("service", "activity"),
		activities: activities,
		llm:        llm,
		model:      model,
	}
}
