package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	cache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/api"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/config"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/gateway"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/logger"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/usecase"
	mock_usecase "github.com/derak-isaack/KenyaRe-Hackathon/internal/usecase/mocks"
)

func init() {
	logger.InitLogger("error")
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		RateLimitInterval:    time.Microsecond,
		RateLimitBurst:       1000,
		CacheExpiration:      time.Minute,
		CacheCleanupInterval: time.Minute,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *mock_usecase.MockReportRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mock_usecase.NewMockReportRepository(ctrl)
	cfg := testConfig()
	handler := api.NewAnalysisHandler(usecase.NewAnalyzer(), store, cache.New(cfg.CacheExpiration, cfg.CacheCleanupInterval))
	server := httptest.NewServer(api.NewRouter(handler, cfg))
	t.Cleanup(server.Close)

	return server, store
}

func validBundle() domain.AnalysisInput {
	return domain.AnalysisInput{
		ClaimID:               "CLM-2024-0042",
		StatementDates:        []string{"2024-09-15"},
		TreatySlipDates:       []string{"2024-09-15"},
		GroundTruthDates:      []string{"2024-09-15"},
		TreatyCashLossLimit:   2_000_000,
		StatementSurplus:      2_500_000,
		TreatyCommission:      124_000,
		StatementCommission:   120_000,
		StatementClaimTotal:   1_000_000,
		GroundTruthClaimTotal: 1_000_000,
		StatementClaimCount:   12,
		GroundTruthClaimCount: 12,
		PairingConfidence:     0.93,
		Statement:             &domain.DocumentSignals{ComplianceScore: 88},
		TreatySlip:            &domain.DocumentSignals{ComplianceScore: 83},
		GroundTruth:           &domain.GroundTruthSignals{MatchedClaimIDs: []string{"GT-001"}, AvgSimilarity: 0.87, MaxSimilarity: 0.95},
		Integrity:             &domain.IntegritySignals{CompletenessScore: 95, AccuracyScore: 92, ConsistencyScore: 90},
		Indicators:            &domain.IndicatorSignals{DataConsistency: 85, CrossReferenceAccuracy: 92, FinancialAlignment: 80},
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestAnalyzeEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	store.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(nil)

	resp := postJSON(t, server.URL+"/api/claims/analyze", validBundle())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report domain.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "CLM-2024-0042", report.ClaimID)
	assert.Equal(t, domain.RiskLevelLow, report.Analysis.OverallRiskLevel)
	assert.InDelta(t, 94.56, report.Analysis.ValidationMetrics.TrustScore, 0.01)
}

func TestAnalyzeEndpoint_InvalidBundle(t *testing.T) {
	server, _ := newTestServer(t)

	bundle := validBundle()
	bundle.StatementClaimCount = -1

	resp := postJSON(t, server.URL+"/api/claims/analyze", bundle)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Error, "invalid input")
}

func TestAnalyzeEndpoint_MissingUpstreamSignals(t *testing.T) {
	server, _ := newTestServer(t)

	bundle := validBundle()
	bundle.Indicators = nil

	resp := postJSON(t, server.URL+"/api/claims/analyze", bundle)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAnalyzeEndpoint_MalformedBody(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/claims/analyze", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeEndpoint_StoreFailure(t *testing.T) {
	server, store := newTestServer(t)

	store.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))

	resp := postJSON(t, server.URL+"/api/claims/analyze", validBundle())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAnalyzeBatchEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	good := validBundle()
	bad := validBundle()
	bad.ClaimID = "CLM-BAD"
	bad.GroundTruth = nil

	// Only the good claim gets persisted.
	store.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(nil)

	resp := postJSON(t, server.URL+"/api/claims/analyze-batch", []domain.AnalysisInput{good, bad})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []api.BatchItemResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	require.Len(t, results, 2)

	assert.Equal(t, "CLM-2024-0042", results[0].ClaimID)
	assert.NotEmpty(t, results[0].ReportID)
	assert.NotNil(t, results[0].Analysis)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, "CLM-BAD", results[1].ClaimID)
	assert.Nil(t, results[1].Analysis)
	assert.Contains(t, results[1].Error, "upstream data missing")
}

func TestListReportsEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	summaries := []domain.ReportSummary{
		{ID: "r1", ClaimID: "CLM-1", TrustScore: 90, RiskLevel: domain.RiskLevelLow},
	}
	store.EXPECT().ListReports(gomock.Any()).Return(summaries, nil)

	resp, err := http.Get(server.URL + "/api/reports")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.ReportSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, summaries, got)
}

func TestGetReportComplianceEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	report := &domain.Report{
		ID:      "r1",
		ClaimID: "CLM-1",
		Analysis: domain.ComplianceAnalysis{
			OverallRiskLevel:  domain.RiskLevelMedium,
			ValidationMetrics: domain.ValidationMetrics{TrustScore: 62.5},
		},
	}
	// A single store read: the second request must be served from cache.
	store.EXPECT().GetReport(gomock.Any(), "r1").Return(report, nil).Times(1)

	for i := 0; i < 2; i++ {
		resp, err := http.Get(server.URL + "/api/reports/r1/compliance")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var analysis domain.ComplianceAnalysis
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))
		resp.Body.Close()
		assert.Equal(t, domain.RiskLevelMedium, analysis.OverallRiskLevel)
		assert.InDelta(t, 62.5, analysis.ValidationMetrics.TrustScore, 0.001)
	}
}

func TestGetReportComplianceEndpoint_NotFound(t *testing.T) {
	server, store := newTestServer(t)

	store.EXPECT().GetReport(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("%w: missing", gateway.ErrReportNotFound))

	resp, err := http.Get(server.URL + "/api/reports/missing/compliance")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	store.EXPECT().GetStats(gomock.Any()).Return(&domain.SystemStats{
		TotalReports:  4,
		AvgTrustScore: 71.25,
		LowRiskCount:  2, MediumRiskCount: 1, HighRiskCount: 1,
	}, nil)

	resp, err := http.Get(server.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats domain.SystemStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 4, stats.TotalReports)
	assert.InDelta(t, 71.25, stats.AvgTrustScore, 0.001)
}

func TestHealthEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	store.EXPECT().Ping(gomock.Any()).Return(nil)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthEndpoint_StoreDown(t *testing.T) {
	server, store := newTestServer(t)

	store.EXPECT().Ping(gomock.Any()).Return(fmt.Errorf("connection refused"))

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
