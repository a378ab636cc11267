// Package feedback records parent feedback on completed activities.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// listCap is the fetch ceiling for one activity's feedback.
const listCap = 100

type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) error
	ListByActivity(ctx context.Context, activityID string, limit uint64) ([]*domain.Feedback, error)
}

// Service implements feedback submission and listing.
type Service struct {
	log      *slog.Logger
	feedback feedbackRepo
}

// NewService creates a new feedback service instance.
func NewService(logger *slog.Logger, feedback feedbackRepo) *Service {
	return &Service{
		log:      logger.With("service", "feedback"),
		feedback: feedback,
	}
}

// SubmitInput is a feedback submission. Nil pointers mark absent fields.
// Rating is stored as given and the referenced activity is not looked up.
type SubmitInput struct {
	ActivityID  string
	ChildID     *string
	Rating      *int
	Experience  *string
	Outcomes    *string
	Suggestions *string
}

// Validate checks that every required field is present.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.ActivityID == "" {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	if i.Rating == nil {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "required"})
	}
	if i.Experience == nil {
		errs = append(errs, domain.FieldError{Field: "experience", Message: "required"})
	}
	if i.Outcomes == nil {
		errs = append(errs, domain.FieldError{Field: "outcomes", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Submit stores the feedback and returns its id.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	f := &domain.Feedback{
		ID:          uuid.New(),
		ActivityID:  input.ActivityID,
		ChildID:     domain.NormalizeRef(input.ChildID),
		Rating:      *input.Rating,
		Experience:  *input.Experience,
		Outcomes:    *input.Outcomes,
		Suggestions: input.Suggestions,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return uuid.Nil, fmt.Errorf("feedback.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "feedback submitted",
		slog.String("feedback_id", f.ID.String()),
		slog.String("activity_id", f.ActivityID),
		slog.Int("rating", f.Rating))

	return f.ID, nil
}

// List returns feedback for an activity in submission order.
func (s *Service) List(ctx context.Context, activityID string) ([]*domain.Feedback, error) {
	list, err := s.feedback.ListByActivity(ctx, activityID, listCap)
	if err != nil {
		return nil, fmt.Errorf("feedback.List: %w", err)
	}
	return list, nil
}
