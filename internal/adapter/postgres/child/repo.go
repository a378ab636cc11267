// Package child implements the child profile store using PostgreSQL.
// Every read and write is scoped by the owning user's id.
package child

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

const table = "child_profiles"

var columns = []string{"id", "user_id", "name", "age", "grade", "interests", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Age       int       `db:"age"`
	Grade     *string   `db:"grade"`
	Interests []string  `db:"interests"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.ChildProfile {
	interests := r.Interests
	if interests == nil {
		interests = []string{}
	}
	return &domain.ChildProfile{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Age:       r.Age,
		Grade:     r.Grade,
		Interests: interests,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides child profile persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new child profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a profile.
func (r *Repo) Create(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserID, c.Name, c.Age, c.Grade, nonNil(c.Interests), c.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, query, c.ID)
}

// ListByUser returns the user's profiles, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ChildProfile, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "child_profile", "")
	}

	out := make([]*domain.ChildProfile, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Get returns the profile only if it belongs to userID; otherwise domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (*domain.ChildProfile, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	return r.getOne(ctx, query, id)
}

// Update overwrites name, age, grade and interests of an owned profile.
func (r *Repo) Update(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", c.Name).
		Set("age", c.Age).
		Set("grade", c.Grade).
		Set("interests", nonNil(c.Interests)).
		Where(squirrel.Eq{"id": c.ID, "user_id": c.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, query, c.ID)
}

// Delete removes an owned profile. Missing or foreign profiles yield domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "child_profile", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "child_profile", id.String())
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.ChildProfile, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "child_profile", id.String())
	}
	return out.toDomain(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
