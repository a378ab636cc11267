package rest

import (
	"net/http"

	"github.com/heartmarshall/brightminds-backend/internal/transport/middleware"
)

// APIMessage is returned by GET /api/.
const APIMessage = "Homeschool Learning Portal API"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Auth       *AuthHandler
	Children   *ChildHandler
	Activities *ActivityHandler
	Feedback   *FeedbackHandler
	Artifacts  *ArtifactHandler
	Reports    *ReportHandler
	Health     *HealthHandler
}

// NewRouter mounts the API under /api and the probes at the root.
// generateLimit wraps only the generation endpoint.
func NewRouter(h Handlers, generateLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/{$}", root)

	mux.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("POST /api/children", h.Children.Create)
	mux.HandleFunc("GET /api/children", h.Children.List)
	mux.HandleFunc("GET /api/children/{id}", h.Children.Get)
	mux.HandleFunc("PUT /api/children/{id}", h.Children.Update)
	mux.HandleFunc("DELETE /api/children/{id}", h.Children.Delete)
	mux.HandleFunc("GET /api/children/{id}/exposure-report", h.Reports.ExposureReport)

	mux.Handle("POST /api/activities/generate", generateLimit(http.HandlerFunc(h.Activities.Generate)))
	mux.HandleFunc("GET /api/activities", h.Activities.List)
	mux.HandleFunc("GET /api/activities/{id}", h.Activities.Get)

	mux.HandleFunc("POST /api/feedback", h.Feedback.Submit)
	mux.HandleFunc("GET /api/feedback/{activity_id}", h.Feedback.List)

	mux.HandleFunc("POST /api/artifacts", h.Artifacts.Upload)
	mux.HandleFunc("GET /api/artifacts/{activity_id}", h.Artifacts.List)

	return mux
}

func root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": APIMessage})
}
