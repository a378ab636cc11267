package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// listCap is the ceiling on a catalogue listing.
const listCap = 100

// List returns stored activities matching the filter, newest first.
func (s *Service) List(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error) {
	if f.Limit <= 0 || f.Limit > listCap {
		f.Limit = listCap
	}
	f.ChildID = domain.NormalizeRef(f.ChildID)

	list, err := s.activities.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("activity.List: %w", err)
	}
	return list, nil
}

// Get returns one activity. An id that is not a valid UUID cannot exist and
// is reported as not found.
func (s *Service) Get(ctx context.Context, id string) (*domain.Activity, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}

	a, err := s.activities.GetByID(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("activity.Get: %w", err)
	}
	return a, nil
}
