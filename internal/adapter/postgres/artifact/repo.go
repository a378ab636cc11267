// Package artifact implements uploaded artifact persistence using PostgreSQL.
package artifact

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

const table = "artifacts"

var columns = []string{"id", "activity_id", "child_id", "filename", "content_type", "file_data", "created_at"}

type row struct {
	ID          uuid.UUID `db:"id"`
	ActivityID  string    `db:"activity_id"`
	ChildID     *string   `db:"child_id"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	FileData    string    `db:"file_data"`
	CreatedAt   time.Time `db:"created_at"`
}

// Repo provides artifact persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new artifact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores an artifact. FileData is expected to be base64 already.
func (r *Repo) Create(ctx context.Context, a *domain.Artifact) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.ActivityID, a.ChildID, a.Filename, a.ContentType, a.FileData, a.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "artifact", a.ID.String())
	}
	return nil
}

// ListByActivity returns artifacts for an activity in insertion order,
// payload included.
func (r *Repo) ListByActivity(ctx context.Context, activityID string, limit uint64) ([]*domain.Artifact, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"activity_id": activityID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "artifact", "")
	}

	out := make([]*domain.Artifact, 0, len(rows))
	for _, rw := range rows {
		a := domain.Artifact(rw)
		out = append(out, &a)
	}
	return out, nil
}
