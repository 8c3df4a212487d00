package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/gateway"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/logger"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/usecase"
)

// AnalysisHandler serves the compliance analysis endpoints.
type AnalysisHandler struct {
	analyzer *usecase.Analyzer
	store    usecase.ReportRepository
	cache    *cache.Cache
}

// NewAnalysisHandler creates a handler backed by the given engine and store.
func NewAnalysisHandler(analyzer *usecase.Analyzer, store usecase.ReportRepository, reportCache *cache.Cache) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, store: store, cache: reportCache}
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BatchItemResult is one slot of the batch response.
type BatchItemResult struct {
	ClaimID  string                     `json:"claim_id"`
	ReportID string                     `json:"report_id,omitempty"`
	Analysis *domain.ComplianceAnalysis `json:"analysis,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Store     string    `json:"store"`
	Timestamp time.Time `json:"timestamp"`
}

// Analyze scores one claim input bundle, persists the result, and returns
// the stored report.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	analysis, err := h.analyzer.Analyze(input)
	if err != nil {
		logger.L.Warn("analysis rejected", "claimID", input.ClaimID, "error", err)
		renderError(w, r, engineErrorStatus(err), err.Error())
		return
	}

	report := &domain.Report{
		ID:        uuid.NewString(),
		ClaimID:   input.ClaimID,
		CreatedAt: time.Now().UTC(),
		Analysis:  *analysis,
	}
	if err := h.store.SaveReport(r.Context(), report); err != nil {
		logger.L.Error("failed to persist report", "claimID", input.ClaimID, "error", err)
		renderError(w, r, http.StatusInternalServerError, "failed to persist report")
		return
	}

	logger.L.Info("claim analyzed", "claimID", input.ClaimID, "reportID", report.ID,
		"trustScore", analysis.ValidationMetrics.TrustScore, "riskLevel", analysis.OverallRiskLevel)
	render.JSON(w, r, report)
}

// AnalyzeBatch scores several claims in one request. Failing claims occupy
// their own error slots; the rest are persisted and returned normally.
func (h *AnalysisHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var inputs []domain.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		renderError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	results := h.analyzer.AnalyzeBatch(r.Context(), inputs)

	response := make([]BatchItemResult, 0, len(results))
	for _, result := range results {
		item := BatchItemResult{ClaimID: result.ClaimID}
		if result.Err != nil {
			item.Error = result.Err.Error()
			response = append(response, item)
			continue
		}

		report := &domain.Report{
			ID:        uuid.NewString(),
			ClaimID:   result.ClaimID,
			CreatedAt: time.Now().UTC(),
			Analysis:  *result.Analysis,
		}
		if err := h.store.SaveReport(r.Context(), report); err != nil {
			logger.L.Error("failed to persist batch report", "claimID", result.ClaimID, "error", err)
			item.Error = "failed to persist report"
		} else {
			item.ReportID = report.ID
			item.Analysis = result.Analysis
		}
		response = append(response, item)
	}

	render.JSON(w, r, response)
}

// ListReports returns summaries of all stored reports.
func (h *AnalysisHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ListReports(r.Context())
	if err != nil {
		logger.L.Error("failed to list reports", "error", err)
		renderError(w, r, http.StatusInternalServerError, "failed to list reports")
		return
	}
	render.JSON(w, r, summaries)
}

// GetReportCompliance serves the stored compliance analysis for one report.
// Analyses are immutable once stored, so cached entries never go stale.
func (h *AnalysisHandler) GetReportCompliance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if cached, ok := h.cache.Get(id); ok {
		render.JSON(w, r, cached)
		return
	}

	report, err := h.store.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, gateway.ErrReportNotFound) {
			renderError(w, r, http.StatusNotFound, "report not found")
			return
		}
		logger.L.Error("failed to load report", "reportID", id, "error", err)
		renderError(w, r, http.StatusInternalServerError, "failed to load report")
		return
	}

	h.cache.Set(id, &report.Analysis, cache.DefaultExpiration)
	render.JSON(w, r, &report.Analysis)
}

// Stats aggregates the stored reports.
func (h *AnalysisHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		logger.L.Error("failed to compute stats", "error", err)
		renderError(w, r, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	render.JSON(w, r, stats)
}

// Health reports liveness and store connectivity.
func (h *AnalysisHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok", Store: "ok", Timestamp: time.Now().UTC()}
	if err := h.store.Ping(r.Context()); err != nil {
		response.Status = "degraded"
		response.Store = "unreachable"
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, response)
}

// engineErrorStatus maps the engine's error taxonomy to HTTP statuses. All
// three kinds are caller problems, not server faults.
func engineErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUpstreamDataMissing),
		errors.Is(err, domain.ErrIndeterminateRatio):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
}
