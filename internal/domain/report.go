package domain

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxStrengths          = 3
	maxUnderexposedNamed  = 3
	underexposedThreshold = 2
	encouragementRating   = 4.0
)

// Recommendation texts, emitted in this order when their rule applies.
const (
	RecommendUnderexposedPrefix = "Consider exploring more activities that develop: "
	RecommendEncouragement      = "Great engagement! Your child is enjoying the activities. Keep up the momentum with similar challenges."
	RecommendClosing            = "Continue providing diverse learning experiences across all intelligences for well-rounded development."
)

// ExposureReport summarises how often a child's activities touched each
// intelligence and subject. It is derived on request and never stored.
type ExposureReport struct {
	ChildID              uuid.UUID
	ChildName            string
	TotalActivities      int
	IntelligenceExposure map[string]int
	SubjectExposure      map[string]int
	SkillsDeveloped      []string
	AverageRating        float64
	Strengths            []string
	Recommendations      []string
	GeneratedAt          time.Time
}

// BuildExposureReport aggregates activities and feedback for child.
// SkillsDeveloped is de-duplicated but its order is not guaranteed.
func BuildExposureReport(child *ChildProfile, activities []*Activity, feedback []*Feedback, now time.Time) *ExposureReport {
	intelligences := newCounter()
	subjects := newCounter()
	var skills []string

	for _, a := range activities {
		for _, label := range a.Intelligences {
			intelligences.inc(label)
		}
		for _, label := range a.Subjects {
			subjects.inc(label)
		}
		skills = append(skills, a.Skills...)
	}

	avg := AverageRating(feedback)

	return &ExposureReport{
		ChildID:              child.ID,
		ChildName:            child.Name,
		TotalActivities:      len(activities),
		IntelligenceExposure: intelligences.counts,
		SubjectExposure:      subjects.counts,
		SkillsDeveloped:      dedupe(skills),
		AverageRating:        avg,
		Strengths:            intelligences.top(maxStrengths),
		Recommendations:      recommendations(intelligences, avg),
		GeneratedAt:          now.UTC(),
	}
}

// AverageRating returns the mean rating rounded to 2 decimals, or 0 when
// there is no feedback.
func AverageRating(feedback []*Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	sum := 0
	for _, f := range feedback {
		sum += f.Rating
	}
	return math.Round(float64(sum)/float64(len(feedback))*100) / 100
}

func recommendations(intelligences *counter, avg float64) []string {
	var recs []string

	var under []string
	for _, label := range intelligences.order {
		if intelligences.counts[label] < underexposedThreshold {
			under = append(under, label)
		}
	}
	if len(under) > 0 {
		if len(under) > maxUnderexposedNamed {
			under = under[:maxUnderexposedNamed]
		}
		recs = append(recs, RecommendUnderexposedPrefix+strings.Join(under, ", "))
	}

	if avg >= encouragementRating {
		recs = append(recs, RecommendEncouragement)
	}

	return append(recs, RecommendClosing)
}

// counter counts labels and remembers first-encounter order for tie-breaks.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) inc(label string) {
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// top returns up to n labels by descending count; equal counts keep
// first-encounter order.
func (c *counter) top(n int) []string {
	labels := make([]string, len(c.order))
	copy(labels, c.order)
	sort.SliceStable(labels, func(i, j int) bool {
		return c.counts[labels[i]] > c.counts[labels[j]]
	})
	if len(labels) > n {
		labels = labels[:n]
	}
	return labels
}

func dedupe(items []string) []string {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

