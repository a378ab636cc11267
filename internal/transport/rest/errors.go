package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/pkg/ctxutil"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps a service error to its HTTP status and payload. This is
// the only place error kinds become status codes.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		valErr *domain.ValidationError
		genErr *domain.GenerationError
	)

	switch {
	case errors.As(err, &valErr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range valErr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "not authenticated")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &genErr):
		log.ErrorContext(r.Context(), "activity generation failed",
			slog.String("stage", genErr.Stage),
			slog.String("error", genErr.Err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, http.StatusInternalServerError, "failed to generate activity: "+genErr.Err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
