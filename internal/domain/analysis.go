package domain

// RiskLevel classifies how risky a claim (or a single document) looks.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// ReliabilityRating is the categorical rating derived from the data integrity scores.
type ReliabilityRating string

const (
	ReliabilityHigh   ReliabilityRating = "HIGH"
	ReliabilityMedium ReliabilityRating = "MEDIUM"
	ReliabilityLow    ReliabilityRating = "LOW"
)

// DateMatches holds the pairwise match counts between the three date sources.
type DateMatches struct {
	StatementGTMatches     int `json:"statement_gt_matches"`
	TreatyGTMatches        int `json:"treaty_gt_matches"`
	StatementTreatyMatches int `json:"statement_treaty_matches"`
}

// DateComparisonResult cross-references the date sets extracted from the
// statement, the treaty slip, and the ground truth record.
type DateComparisonResult struct {
	StatementDates   []string    `json:"statement_dates"`
	TreatySlipDates  []string    `json:"treaty_slip_dates"`
	GroundTruthDates []string    `json:"ground_truth_dates"`
	Matches          DateMatches `json:"matches"`
	Discrepancies    []string    `json:"discrepancies"`
	MatchPercentage  float64     `json:"match_percentage"`
}

// CashLossLimitCheck validates the treaty slip cash loss limit against the
// surplus declared in the statement.
type CashLossLimitCheck struct {
	TreatySlipAmount       float64 `json:"treaty_slip_amount"`
	StatementSurplusAmount float64 `json:"statement_surplus_amount"`
	WithinLimits           bool    `json:"within_limits"`
	VariancePercentage     float64 `json:"variance_percentage"`
	RiskFlag               bool    `json:"risk_flag"`
}

// CommissionCheck reconciles the commission amounts stated in both documents.
type CommissionCheck struct {
	TreatySlipCommission float64 `json:"treaty_slip_commission"`
	StatementCommission  float64 `json:"statement_commission"`
	Match                bool    `json:"match"`
	VarianceAmount       float64 `json:"variance_amount"`
	VariancePercentage   float64 `json:"variance_percentage"`
}

// ClaimAmountsCheck compares the total claimed amount against the ground truth.
type ClaimAmountsCheck struct {
	TotalClaimsStatement   float64  `json:"total_claims_statement"`
	TotalClaimsGroundTruth float64  `json:"total_claims_ground_truth"`
	Variance               float64  `json:"variance"`
	VariancePercentage     float64  `json:"variance_percentage"`
	SuspiciousPatterns     []string `json:"suspicious_patterns"`
}

// FinancialComparisonResult aggregates the three financial checks.
type FinancialComparisonResult struct {
	CashLossLimit CashLossLimitCheck `json:"cash_loss_limit"`
	Commissions   CommissionCheck    `json:"commissions"`
	ClaimAmounts  ClaimAmountsCheck  `json:"claim_amounts"`
}

// ClaimsCountCheck compares the number of claims in the statement with the
// number of matched ground truth claims.
type ClaimsCountCheck struct {
	StatementClaims    int      `json:"statement_claims"`
	GroundTruthClaims  int      `json:"ground_truth_claims"`
	Match              bool     `json:"match"`
	Variance           int      `json:"variance"`
	VariancePercentage float64  `json:"variance_percentage"`
	MissingClaims      []string `json:"missing_claims"`
	ExtraClaims        []string `json:"extra_claims"`
}

// DataIntegrityScores carries the upstream extraction quality scores and the
// reliability rating derived from their mean.
type DataIntegrityScores struct {
	CompletenessScore float64           `json:"completeness_score"`
	AccuracyScore     float64           `json:"accuracy_score"`
	ConsistencyScore  float64           `json:"consistency_score"`
	ReliabilityRating ReliabilityRating `json:"reliability_rating"`
}

// GroundTruthComparisonResult aggregates the claims count check and the data
// integrity scores.
type GroundTruthComparisonResult struct {
	TotalClaimsComparison ClaimsCountCheck    `json:"total_claims_comparison"`
	DataIntegrity         DataIntegrityScores `json:"data_integrity"`
}

// VerificationStatus records which of the four cross-document checks passed.
type VerificationStatus struct {
	DatesVerified       bool `json:"dates_verified"`
	AmountsVerified     bool `json:"amounts_verified"`
	CommissionsVerified bool `json:"commissions_verified"`
	ClaimsCountVerified bool `json:"claims_count_verified"`
}

// ReliabilityIndicators are the four 0-100 sub-scores packaged next to the
// trust score. TemporalConsistency is the date match percentage; the other
// three come from upstream cross-reference signals.
type ReliabilityIndicators struct {
	DataConsistency        float64 `json:"data_consistency"`
	CrossReferenceAccuracy float64 `json:"cross_reference_accuracy"`
	FinancialAlignment     float64 `json:"financial_alignment"`
	TemporalConsistency    float64 `json:"temporal_consistency"`
}

// ValidationMetrics bundles the aggregate trust score with its supporting
// indicators and verification booleans.
type ValidationMetrics struct {
	TrustScore            float64               `json:"trust_score"`
	ReliabilityIndicators ReliabilityIndicators `json:"reliability_indicators"`
	VerificationStatus    VerificationStatus    `json:"verification_status"`
}

// GroundTruthSummary snapshots the similarity search outcome for the claim.
type GroundTruthSummary struct {
	MatchesCount  int     `json:"matches_count"`
	AvgSimilarity float64 `json:"avg_similarity"`
	MaxSimilarity float64 `json:"max_similarity"`
}

// DocumentCompliance is the per-document compliance sub-record.
type DocumentCompliance struct {
	ComplianceScore       float64   `json:"compliance_score"`
	RiskLevel             RiskLevel `json:"risk_level"`
	RiskIndicators        []string  `json:"risk_indicators"`
	GroundTruthSimilarity float64   `json:"ground_truth_similarity"`
}

// ComplianceAnalysis is the top-level result for one claim. It is a pure
// value: once assembled it is never mutated.
type ComplianceAnalysis struct {
	OverallComplianceScore float64                     `json:"overall_compliance_score"`
	OverallRiskLevel       RiskLevel                   `json:"overall_risk_level"`
	PairingConfidence      float64                     `json:"pairing_confidence"`
	StatementCompliance    DocumentCompliance          `json:"statement_compliance"`
	TreatySlipCompliance   DocumentCompliance          `json:"treaty_slip_compliance"`
	GroundTruthAnalysis    GroundTruthSummary          `json:"ground_truth_analysis"`
	DateComparison         DateComparisonResult        `json:"date_comparison"`
	FinancialComparison    FinancialComparisonResult   `json:"financial_comparison"`
	GroundTruthComparison  GroundTruthComparisonResult `json:"ground_truth_comparison"`
	ValidationMetrics      ValidationMetrics           `json:"validation_metrics"`
}
