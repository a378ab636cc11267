package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/brightminds-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres/activity"
	artifactrepo "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres/artifact"
	childrepo "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres/child"
	feedbackrepo "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres/feedback"
	userrepo "github.com/heartmarshall/brightminds-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/brightminds-backend/internal/auth"
	"github.com/heartmarshall/brightminds-backend/internal/config"
	activitysvc "github.com/heartmarshall/brightminds-backend/internal/service/activity"
	artifactsvc "github.com/heartmarshall/brightminds-backend/internal/service/artifact"
	authsvc "github.com/heartmarshall/brightminds-backend/internal/service/auth"
	childsvc "github.com/heartmarshall/brightminds-backend/internal/service/child"
	feedbacksvc "github.com/heartmarshall/brightminds-backend/internal/service/feedback"
	reportsvc "github.com/heartmarshall/brightminds-backend/internal/service/report"
	"github.com/heartmarshall/brightminds-backend/internal/transport/middleware"
	"github.com/heartmarshall/brightminds-backend/internal/transport/rest"
)

// Database is the subset of *pgxpool.Pool the handler graph needs.
type Database interface {
	postgres.Querier
	postgres.TxBeginner
	Ping(ctx context.Context) error
}

// Completer produces one model completion per call.
type Completer interface {
	Complete(ctx context.Context, model, system, prompt string) (string, error)
}

// Deps are the process-wide resources the HTTP handler is built from.
type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Pool      Database
	Completer Completer
	Limiter   *middleware.RateLimiter
}

// NewHandler wires repositories, services and REST handlers, and wraps the
// router in the global middleware chain.
func NewHandler(d Deps) http.Handler {
	cfg, log := d.Config, d.Logger

	users := userrepo.New(d.Pool)
	children := childrepo.New(d.Pool)
	activities := activityrepo.New(d.Pool)
	feedback := feedbackrepo.New(d.Pool)
	artifacts := artifactrepo.New(d.Pool)
	txm := postgres.NewTxManager(d.Pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	authService := authsvc.NewService(log, users, txm, tokens, cfg.Auth)
	childService := childsvc.NewService(log, children)
	activityService := activitysvc.NewService(log, activities, d.Completer, cfg.LLM.Model)
	feedbackService := feedbacksvc.NewService(log, feedback)
	artifactService := artifactsvc.NewService(log, artifacts)
	reportService := reportsvc.NewService(log, children, activities, feedback)

	router := rest.NewRouter(rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, log),
		Children:   rest.NewChildHandler(childService, log),
		Activities: rest.NewActivityHandler(activityService, log),
		Feedback:   rest.NewFeedbackHandler(feedbackService, log),
		Artifacts:  rest.NewArtifactHandler(artifactService, log),
		Reports:    rest.NewReportHandler(reportService, log),
		Health:     rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Dep: d.Pool}),
	}, d.Limiter.Limit(cfg.RateLimit.GeneratePerMinute))

	return middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService, log),
		middleware.Logger(log),
	)(router)
}
