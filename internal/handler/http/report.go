package http

import (
	"log/slog"
	"net/http"

	"github.com/tracklight/workhours-backend-go/internal/handler/http/response"
	"github.com/tracklight/workhours-backend-go/internal/service/report"
)

type ReportHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	ExportSummaryCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func summaryFilterFromQuery(r *http.Request) report.SummaryFilter {
	q := r.URL.Query()
	return report.SummaryFilter{
		From:    q.Get("from"),
		To:      q.Get("to"),
		GroupBy: q.Get("group_by"),
	}
}

// GetSummary implements ReportHandler.
func (h *ReportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.GetSummary(r.Context(), summaryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportSummaryCSV implements ReportHandler. Errors found after the header
// is written cannot change the status code anymore, so validation runs
// through GetSummary's path before any byte goes out.
func (h *ReportHandlerImpl) ExportSummaryCSV(w http.ResponseWriter, r *http.Request) {
	filter := summaryFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="working-hours-summary.csv"`)

	if err := h.reportService.WriteSummaryCSV(r.Context(), filter, w); err != nil {
		slog.Error("ExportSummaryCSV write error", "error", err)
	}
}
