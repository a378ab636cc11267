package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

type reportService interface {
	ExposureReport(ctx context.Context, childID uuid.UUID) (*domain.ExposureReport, error)
}

// ReportHandler serves the per-child exposure report.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// ExposureReport handles GET /api/children/{id}/exposure-report.
func (h *ReportHandler) ExposureReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, r, h.log, unknownOwnedID(r))
		return
	}

	report, err := h.svc.ExposureReport(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}
