package rest

import (
	"time"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(v domain.UserView) userResponse {
	return userResponse{ID: v.ID.String(), Name: v.Name, Email: v.Email}
}

type childResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Grade     *string   `json:"grade"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

func toChildResponse(c *domain.ChildProfile) childResponse {
	return childResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Name:      c.Name,
		Age:       c.Age,
		Grade:     c.Grade,
		Interests: nonNil(c.Interests),
		CreatedAt: c.CreatedAt.UTC(),
	}
}

type activityResponse struct {
	ID                  string              `json:"id"`
	ChildID             *string             `json:"child_id"`
	Age                 int                 `json:"age"`
	Subjects            []string            `json:"subjects"`
	Intelligences       []string            `json:"intelligences"`
	Tools               []string            `json:"tools"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	Objective           string              `json:"objective"`
	ExpectedOutcome     string              `json:"expected_outcome"`
	MaterialsRequired   []string            `json:"materials_required"`
	CurricularAreas     map[string][]string `json:"curricular_areas"`
	Instructions        []string            `json:"instructions"`
	SuccessMetrics      []string            `json:"success_metrics"`
	ReflectionQuestion  string              `json:"reflection_question"`
	LearningOutcomes    []string            `json:"learning_outcomes"`
	Skills              []string            `json:"skills"`
	EstimatedTime       string              `json:"estimated_time"`
	Extensions          []string            `json:"extensions"`
	DiscussionQuestions []string            `json:"discussion_questions"`
	RealWorldConnection string              `json:"real_world_connection"`
	CreatedAt           time.Time           `json:"created_at"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	areas := a.CurricularAreas
	if areas == nil {
		areas = map[string][]string{}
	}
	return activityResponse{
		ID:                  a.ID.String(),
		ChildID:             a.ChildID,
		Age:                 a.Age,
		Subjects:            nonNil(a.Subjects),
		Intelligences:       nonNil(a.Intelligences),
		Tools:               nonNil(a.Tools),
		Title:               a.Title,
		Description:         a.Description,
		Objective:           a.Objective,
		ExpectedOutcome:     a.ExpectedOutcome,
		MaterialsRequired:   nonNil(a.MaterialsRequired),
		CurricularAreas:     areas,
		Instructions:        nonNil(a.Instructions),
		SuccessMetrics:      nonNil(a.SuccessMetrics),
		ReflectionQuestion:  a.ReflectionQuestion,
		LearningOutcomes:    nonNil(a.LearningOutcomes),
		Skills:              nonNil(a.Skills),
		EstimatedTime:       a.EstimatedTime,
		Extensions:          nonNil(a.Extensions),
		DiscussionQuestions: nonNil(a.DiscussionQuestions),
		RealWorldConnection: a.RealWorldConnection,
		CreatedAt:           a.CreatedAt.UTC(),
	}
}

type feedbackResponse struct {
	ID          string    `json:"id"`
	ActivityID  string    `json:"activity_id"`
	ChildID     *string   `json:"child_id"`
	Rating      int       `json:"rating"`
	Experience  string    `json:"experience"`
	Outcomes    string    `json:"outcomes"`
	Suggestions *string   `json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:          f.ID.String(),
		ActivityID:  f.ActivityID,
		ChildID:     f.ChildID,
		Rating:      f.Rating,
		Experience:  f.Experience,
		Outcomes:    f.Outcomes,
		Suggestions: f.Suggestions,
		CreatedAt:   f.CreatedAt.UTC(),
	}
}

type artifactResponse struct {
	ID          string    `json:"id"`
	ActivityID  string    `json:"activity_id"`
	ChildID     *string   `json:"child_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	FileData    string    `json:"file_data"`
	CreatedAt   time.Time `json:"created_at"`
}

func toArtifactResponse(a *domain.Artifact) artifactResponse {
	return artifactResponse{
		ID:          a.ID.String(),
		ActivityID:  a.ActivityID,
		ChildID:     a.ChildID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		FileData:    a.FileData,
		CreatedAt:   a.CreatedAt.UTC(),
	}
}

type reportResponse struct {
	ChildID              string         `json:"child_id"`
	ChildName            string         `json:"child_name"`
	TotalActivities      int            `json:"total_activities"`
	IntelligenceExposure map[string]int `json:"intelligence_exposure"`
	SubjectExposure      map[string]int `json:"subject_exposure"`
	SkillsDeveloped      []string       `json:"skills_developed"`
	AverageRating        float64        `json:"average_rating"`
	Strengths            []string       `json:"strengths"`
	Recommendations      []string       `json:"recommendations"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

func toReportResponse(r *domain.ExposureReport) reportResponse {
	return reportResponse{
		ChildID:              r.ChildID.String(),
		ChildName:            r.ChildName,
		TotalActivities:      r.TotalActivities,
		IntelligenceExposure: r.IntelligenceExposure,
		SubjectExposure:      r.SubjectExposure,
		SkillsDeveloped:      nonNil(r.SkillsDeveloped),
		AverageRating:        r.AverageRating,
		Strengths:            nonNil(r.Strengths),
		Recommendations:      nonNil(r.Recommendations),
		GeneratedAt:          r.GeneratedAt.UTC(),
	}
}

// createdResponse acknowledges a stored feedback or artifact.
type createdResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func mapList[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
