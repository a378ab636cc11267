// Package activity implements activity persistence using PostgreSQL.
package activity

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

const table = "activities"

var columns = []string{
	"id", "child_id", "age", "subjects", "intelligences", "tools",
	"title", "description", "objective", "expected_outcome",
	"materials_required", "curricular_areas", "instructions", "success_metrics",
	"reflection_question", "learning_outcomes", "skills", "estimated_time",
	"extensions", "discussion_questions", "real_world_connection", "created_at",
}

type row struct {
	ID                  uuid.UUID           `db:"id"`
	ChildID             *string             `db:"child_id"`
	Age                 int                 `db:"age"`
	Subjects            []string            `db:"subjects"`
	Intelligences       []string            `db:"intelligences"`
	Tools               []string            `db:"tools"`
	Title               string              `db:"title"`
	Description         string              `db:"description"`
	Objective           string              `db:"objective"`
	ExpectedOutcome     string              `db:"expected_outcome"`
	MaterialsRequired   []string            `db:"materials_required"`
	CurricularAreas     map[string][]string `db:"curricular_areas"`
	Instructions        []string            `db:"instructions"`
	SuccessMetrics      []string            `db:"success_metrics"`
	ReflectionQuestion  string              `db:"reflection_question"`
	LearningOutcomes    []string            `db:"learning_outcomes"`
	Skills              []string            `db:"skills"`
	EstimatedTime       string              `db:"estimated_time"`
	Extensions          []string            `db:"extensions"`
	DiscussionQuestions []string            `db:"discussion_questions"`
	RealWorldConnection string              `db:"real_world_connection"`
	CreatedAt           time.Time           `db:"created_at"`
}

func (r row) toDomain() *domain.Activity {
	areas := r.CurricularAreas
	if areas == nil {
		areas = map[string][]string{}
	}
	return &domain.Activity{
		ID:                  r.ID,
		ChildID:             r.ChildID,
		Age:                 r.Age,
		Subjects:            nonNil(r.Subjects),
		Intelligences:       nonNil(r.Intelligences),
		Tools:               nonNil(r.Tools),
		Title:               r.Title,
		Description:         r.Description,
		Objective:           r.Objective,
		ExpectedOutcome:     r.ExpectedOutcome,
		MaterialsRequired:   nonNil(r.MaterialsRequired),
		CurricularAreas:     areas,
		Instructions:        nonNil(r.Instructions),
		SuccessMetrics:      nonNil(r.SuccessMetrics),
		ReflectionQuestion:  r.ReflectionQuestion,
		LearningOutcomes:    nonNil(r.LearningOutcomes),
		Skills:              nonNil(r.Skills),
		EstimatedTime:       r.EstimatedTime,
		Extensions:          nonNil(r.Extensions),
		DiscussionQuestions: nonNil(r.DiscussionQuestions),
		RealWorldConnection: r.RealWorldConnection,
		CreatedAt:           r.CreatedAt,
	}
}

// Repo provides activity persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a generated activity.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	areas := a.CurricularAreas
	if areas == nil {
		areas = map[string][]string{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			a.ID, a.ChildID, a.Age, nonNil(a.Subjects), nonNil(a.Intelligences), nonNil(a.Tools),
			a.Title, a.Description, a.Objective, a.ExpectedOutcome,
			nonNil(a.MaterialsRequired), areas, nonNil(a.Instructions), nonNil(a.SuccessMetrics),
			a.ReflectionQuestion, nonNil(a.LearningOutcomes), nonNil(a.Skills), a.EstimatedTime,
			nonNil(a.Extensions), nonNil(a.DiscussionQuestions), a.RealWorldConnection, a.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity", a.ID.String())
	}
	return out.toDomain(), nil
}

// GetByID returns a single activity.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id.String())
	}
	return out.toDomain(), nil
}

// List returns activities matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(conditions(f)).
		OrderBy("created_at DESC").
		Limit(limit(f)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity", "")
	}

	out := make([]*domain.Activity, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
