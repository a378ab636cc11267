package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// Generate asks the completion provider for a new activity, parses the reply
// and stores it. Nothing is persisted unless the reply parses. Provider
// failures are not retried.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.ChildID = domain.NormalizeRef(input.ChildID)

	start := time.Now()

	text, err := s.llm.Complete(ctx, s.model, systemPrompt, buildPrompt(input))
	if err != nil {
		s.log.ErrorContext(ctx, "activity generation failed",
			slog.String("stage", "provider"),
			slog.String("error", err.Error()))
		return nil, domain.NewGenerationError("provider", err)
	}

	g, err := parseResponse(text)
	if err != nil {
		s.log.ErrorContext(ctx, "activity generation failed",
			slog.String("error", err.Error()),
			slog.Int("response_len", len(text)))
		return nil, err
	}

	a := g.toActivity(input)
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()

	stored, err := s.activities.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("activity.Generate store: %w", err)
	}

	s.log.InfoContext(ctx, "activity generated",
		slog.String("activity_id", stored.ID.String()),
		slog.String("model", s.model),
		slog.Duration("duration", time.Since(start)))

	return stored, nil
}
