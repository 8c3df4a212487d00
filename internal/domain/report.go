package domain

import "time"

// Report is a persisted compliance analysis for one claim.
type Report struct {
	ID        string             `json:"id"`
	ClaimID   string             `json:"claim_id"`
	CreatedAt time.Time          `json:"created_at"`
	Analysis  ComplianceAnalysis `json:"analysis"`
}

// ReportSummary is the listing view of a stored report.
type ReportSummary struct {
	ID         string    `json:"id"`
	ClaimID    string    `json:"claim_id"`
	CreatedAt  time.Time `json:"created_at"`
	TrustScore float64   `json:"trust_score"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

// SystemStats aggregates the stored reports for the dashboard stats endpoint.
type SystemStats struct {
	TotalReports    int     `json:"total_reports"`
	AvgTrustScore   float64 `json:"avg_trust_score"`
	LowRiskCount    int     `json:"low_risk_count"`
	MediumRiskCount int     `json:"medium_risk_count"`
	HighRiskCount   int     `json:"high_risk_count"`
}
