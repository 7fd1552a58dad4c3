package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type OverviewUseCase interface {
	Execute(ctx context.Context, input usecase.MultiOverviewInput) (*usecase.MultiOverviewOutput, error)
}

type ReportUseCase interface {
	Execute(ctx context.Context, input usecase.MultiOverviewInput) (*usecase.HealthReportOutput, error)
}

type OverviewHandler struct {
	Overview OverviewUseCase
	Reports  ReportUseCase
}

func NewOverviewHandler(overview OverviewUseCase, reports ReportUseCase) *OverviewHandler {
	return &OverviewHandler{Overview: overview, Reports: reports}
}

// MultiOverview serves GET /multi-overview?start_date&end_date&platform.
func (h *OverviewHandler) MultiOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.Overview.Execute(r.Context(), overviewInput(r))
	if err != nil {
		log.Printf("❌ /multi-overview: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HealthReport serves POST /reports/health with the same query parameters.
func (h *OverviewHandler) HealthReport(w http.ResponseWriter, r *http.Request) {
	if h.Reports == nil {
		writeJSON(w, http.StatusServiceUnavailable, usecase.ToErrorResult(&usecase.ToolError{
			Code:    usecase.CodeUnsupported,
			Message: "no report notifiers configured",
		}, ""))
		return
	}
	out, err := h.Reports.Execute(r.Context(), overviewInput(r))
	if err != nil {
		log.Printf("❌ /reports/health: %v", err)
		writeError(w, err)
		return
	}
	for _, n := range out.Delivered {
		middleware.RecordReport(n, "delivered")
	}
	for n := range out.Failed {
		middleware.RecordReport(n, "failed")
	}
	writeJSON(w, http.StatusOK, out)
}

func overviewInput(r *http.Request) usecase.MultiOverviewInput {
	q := r.URL.Query()
	return usecase.MultiOverviewInput{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Platform:  q.Get("platform"),
	}
}

// writeError maps a ToolError to an HTTP status for the dashboard endpoints.
func writeError(w http.ResponseWriter, err error) {
	res := usecase.ToErrorResult(err, uuid.NewString())
	status := http.StatusBadGateway
	switch res.Error.Code {
	case usecase.CodeInvalidInput:
		status = http.StatusBadRequest
	case usecase.CodeNotFound, usecase.CodeAmbiguousMatch:
		status = http.StatusNotFound
	case usecase.CodeUpstreamRateLimited:
		status = http.StatusTooManyRequests
	case usecase.CodeUnsupported:
		status = http.StatusNotImplemented
	case usecase.CodeDirectoryUnavailable:
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}
