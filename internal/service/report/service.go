// Package report builds per-child exposure reports on request.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/pkg/ctxutil"
)

// fetchCap bounds each of the activity and feedback reads.
const fetchCap = 1000

type childRepo interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.ChildProfile, error)
}

type activityRepo interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error)
}

type feedbackRepo interface {
	ListByChild(ctx context.Context, childID string, limit uint64) ([]*domain.Feedback, error)
}

// Service implements exposure report generation.
type Service struct {
	log        *slog.Logger
	children   childRepo
	activities activityRepo
	feedback   feedbackRepo
	now        func() time.Time
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, children childRepo, activities activityRepo, feedback feedbackRepo) *Service {
	return &Service{
		log:        logger.With("service", "report"),
		children:   children,
		activities: activities,
		feedback:   feedback,
		now:        time.Now,
	}
}

// ExposureReport aggregates the caller's child's activities and feedback.
// A child owned by someone else is reported as not found.
func (s *Service) ExposureReport(ctx context.Context, childID uuid.UUID) (*domain.ExposureReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	child, err := s.children.Get(ctx, userID, childID)
	if err != nil {
		return nil, fmt.Errorf("report.ExposureReport: %w", err)
	}

	ref := childID.String()
	var (
		activities []*domain.Activity
		feedback   []*domain.Feedback
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activities, err = s.activities.List(gctx, domain.ActivityFilter{ChildID: &ref, Limit: fetchCap})
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		feedback, err = s.feedback.ListByChild(gctx, ref, fetchCap)
		if err != nil {
			return fmt.Errorf("list feedback: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("report.ExposureReport: %w", err)
	}

	report := domain.BuildExposureReport(child, activities, feedback, s.now())

	s.log.DebugContext(ctx, "exposure report built",
		slog.String("child_id", ref),
		slog.Int("activities", report.TotalActivities),
		slog.Int("feedback", len(feedback)))

	return report, nil
}
