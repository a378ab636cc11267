package activity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// generated mirrors the JSON object requested in the prompt. Pointer fields
// are required; a nil pointer after decoding means the model omitted it.
type generated struct {
	Title              *string              `json:"title"`
	Description        *string              `json:"description"`
	Objective          *string              `json:"objective"`
	ExpectedOutcome    *string              `json:"expected_outcome"`
	MaterialsRequired  *[]string            `json:"materials_required"`
	CurricularAreas    *map[string][]string `json:"curricular_areas"`
	Instructions       *[]string            `json:"instructions"`
	SuccessMetrics     *[]string            `json:"success_metrics"`
	ReflectionQuestion *string              `json:"reflection_question"`

	LearningOutcomes    []string `json:"learning_outcomes"`
	Skills              []string `json:"skills"`
	EstimatedTime       string   `json:"estimated_time"`
	Extensions          []string `json:"extensions"`
	DiscussionQuestions []string `json:"discussion_questions"`
	RealWorldConnection string   `json:"real_world_connection"`
}

// stripFences removes a leading ```json or ``` marker and a trailing ``` marker.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseResponse decodes the model reply and checks required fields.
func parseResponse(text string) (*generated, error) {
	var g generated
	if err := json.Unmarshal([]byte(stripFences(text)), &g); err != nil {
		return nil, domain.NewGenerationError("decode", err)
	}

	if missing := g.missing(); len(missing) > 0 {
		return nil, domain.NewGenerationError("schema",
			fmt.Errorf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	return &g, nil
}

func (g *generated) missing() []string {
	var out []string
	check := func(name string, present bool) {
		if !present {
			out = append(out, name)
		}
	}
	check("title", g.Title != nil)
	check("description", g.Description != nil)
	check("objective", g.Objective != nil)
	check("expected_outcome", g.ExpectedOutcome != nil)
	check("materials_required", g.MaterialsRequired != nil)
	check("curricular_areas", g.CurricularAreas != nil)
	check("instructions", g.Instructions != nil)
	check("success_metrics", g.SuccessMetrics != nil)
	check("reflection_question", g.ReflectionQuestion != nil)
	return out
}

// toActivity copies required fields verbatim and defaults optional ones to empty.
func (g *generated) toActivity(in GenerateInput) *domain.Activity {
	return &domain.Activity{
		ChildID:             in.ChildID,
		Age:                 in.Age,
		Subjects:            in.Subjects,
		Intelligences:       in.Intelligences,
		Tools:               in.Tools,
		Title:               *g.Title,
		Description:         *g.Description,
		Objective:           *g.Objective,
		ExpectedOutcome:     *g.ExpectedOutcome,
		MaterialsRequired:   orEmpty(*g.MaterialsRequired),
		CurricularAreas:     *g.CurricularAreas,
		Instructions:        orEmpty(*g.Instructions),
		SuccessMetrics:      orEmpty(*g.SuccessMetrics),
		ReflectionQuestion:  *g.ReflectionQuestion,
		LearningOutcomes:    orEmpty(g.LearningOutcomes),
		Skills:              orEmpty(g.Skills),
		EstimatedTime:       g.EstimatedTime,
		Extensions:          orEmpty(g.Extensions),
		DiscussionQuestions: orEmpty(g.DiscussionQuestions),
		RealWorldConnection: g.RealWorldConnection,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
