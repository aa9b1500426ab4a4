package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/infrastructure/metrics"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	FinancialSummary(ctx context.Context, day time.Time) (domain.FinancialSummary, error)
	StatusCounts(ctx context.Context, day time.Time) (domain.ReceiptStatusCounts, error)
}

// DashboardHandler handles dashboard HTTP requests. Aggregate failures
// degrade to zero values with a 200 status; the dashboard never surfaces a
// data layer error to the client.
type DashboardHandler struct {
	dashboardUC DashboardService
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewDashboardHandler creates a new DashboardHandler. metrics may be nil.
func NewDashboardHandler(dashboardUC DashboardService, logger zerolog.Logger, m *metrics.Metrics) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
		metrics:     m,
	}
}

// Stats serves the catalog counts.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUC.Stats(r.Context())
	if err != nil {
		h.degrade(r, "stats", err)
		writeJSON(w, http.StatusOK, dto.DashboardStatsResponse{})
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardStatsFromDomain(stats))
}

// Summary serves the day's income and expense totals.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	day := parseDateQuery(r, "date")

	summary, err := h.dashboardUC.FinancialSummary(r.Context(), day)
	if err != nil {
		h.degrade(r, "summary", err)
		writeJSON(w, http.StatusOK, dto.ZeroFinancialSummaryResponse())
		return
	}

	writeJSON(w, http.StatusOK, dto.FinancialSummaryFromDomain(summary))
}

// StatusCounts serves the day's receipt counts per operational status.
func (h *DashboardHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	day := parseDateQuery(r, "date")

	counts, err := h.dashboardUC.StatusCounts(r.Context(), day)
	if err != nil {
		h.degrade(r, "status", err)
		writeJSON(w, http.StatusOK, dto.StatusCountsResponse{})
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusCountsFromDomain(counts))
}

func (h *DashboardHandler) degrade(r *http.Request, aggregate string, err error) {
	h.logger.Error().
		Err(err).
		Str("aggregate", aggregate).
		Str("path", r.URL.Path).
		Msg("dashboard aggregate degraded to zero values")

	if h.metrics != nil {
		h.metrics.DashboardDegraded.WithLabelValues(aggregate).Inc()
	}
}
