package activity

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

const (
	// DefaultLimit is the listing ceiling applied when the filter has none.
	DefaultLimit = 100
	// MaxLimit bounds any listing, including per-child reads for reports.
	MaxLimit = 1000
)

// conditions translates a filter into WHERE predicates. Subject and
// intelligence match exact membership in the stored arrays.
func conditions(f domain.ActivityFilter) squirrel.And {
	where := squirrel.And{}
	if f.Subject != nil {
		where = append(where, squirrel.Expr("? = ANY(subjects)", *f.Subject))
	}
	if f.Intelligence != nil {
		where = append(where, squirrel.Expr("? = ANY(intelligences)", *f.Intelligence))
	}
	if f.Age != nil {
		where = append(where, squirrel.Eq{"age": *f.Age})
	}
	if f.ChildID != nil {
		where = append(where, squirrel.Eq{"child_id": *f.ChildID})
	}
	return where
}

func limit(f domain.ActivityFilter) uint64 {
	switch {
	case f.Limit <= 0:
		return DefaultLimit
	case f.Limit > MaxLimit:
		return MaxLimit
	default:
		return uint64(f.Limit)
	}
}
