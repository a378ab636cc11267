// Package feedback implements feedback persistence using PostgreSQL.
package feedback

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

const table = "feedback"

var columns = []string{"id", "activity_id", "child_id", "rating", "experience", "outcomes", "suggestions", "created_at"}

type row struct {
	ID          uuid.UUID `db:"id"`
	ActivityID  string    `db:"activity_id"`
	ChildID     *string   `db:"child_id"`
	Rating      int       `db:"rating"`
	Experience  string    `db:"experience"`
	Outcomes    string    `db:"outcomes"`
	Suggestions *string   `db:"suggestions"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Feedback {
	f := domain.Feedback(r)
	return &f
}

// Repo provides feedback persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new feedback repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a feedback record verbatim.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(f.ID, f.ActivityID, f.ChildID, f.Rating, f.Experience, f.Outcomes, f.Suggestions, f.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "feedback", f.ID.String())
	}
	return nil
}

// ListByActivity returns feedback for an activity in insertion order.
func (r *Repo) ListByActivity(ctx context.Context, activityID string, limit uint64) ([]*domain.Feedback, error) {
	return r.list(ctx, squirrel.Eq{"activity_id": activityID}, limit)
}

// ListByChild returns feedback tagged with a child id in insertion order.
func (r *Repo) ListByChild(ctx context.Context, childID string, limit uint64) ([]*domain.Feedback, error) {
	return r.list(ctx, squirrel.Eq{"child_id": childID}, limit)
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, limit uint64) ([]*domain.Feedback, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "feedback", "")
	}

	out := make([]*domain.Feedback, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

