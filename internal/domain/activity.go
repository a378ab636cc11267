package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a generated learning activity. It is immutable once stored.
// ChildID is a weak reference: it is never checked against child profiles.
type Activity struct {
	ID            uuid.UUID
	ChildID       *string
	Age           int
	Subjects      []string
	Intelligences []string
	Tools         []string

	Title               string
	Description         string
	Objective           string
	ExpectedOutcome     string
	MaterialsRequired   []string
	CurricularAreas     map[string][]string
	Instructions        []string
	SuccessMetrics      []string
	ReflectionQuestion  string
	LearningOutcomes    []string
	Skills              []string
	EstimatedTime       string
	Extensions          []string
	DiscussionQuestions []string
	RealWorldConnection string

	CreatedAt time.Time
}

// ActivityFilter narrows an activity listing. Nil fields are not applied.
// Subject and Intelligence match by exact list membership.
type ActivityFilter struct {
	Subject      *string
	Intelligence *string
	Age          *int
	ChildID      *string
	Limit        int
}
