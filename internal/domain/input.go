package domain

// DocumentSignals carries the per-document compliance signals supplied by the
// ground truth similarity service.
type DocumentSignals struct {
	ComplianceScore       float64  `json:"compliance_score"`
	RiskIndicators        []string `json:"risk_indicators"`
	GroundTruthSimilarity float64  `json:"ground_truth_similarity"`
}

// GroundTruthSignals summarises the similarity search result for the claim.
type GroundTruthSignals struct {
	MatchedClaimIDs []string `json:"matched_claim_ids"`
	AvgSimilarity   float64  `json:"avg_similarity"`
	MaxSimilarity   float64  `json:"max_similarity"`
}

// IntegritySignals are the upstream extraction quality scores, each 0-100.
type IntegritySignals struct {
	CompletenessScore float64 `json:"completeness_score"`
	AccuracyScore     float64 `json:"accuracy_score"`
	ConsistencyScore  float64 `json:"consistency_score"`
}

// IndicatorSignals are the upstream reliability sub-scores, each 0-100.
// Temporal consistency is not listed here because the engine derives it from
// the date comparison.
type IndicatorSignals struct {
	DataConsistency        float64 `json:"data_consistency"`
	CrossReferenceAccuracy float64 `json:"cross_reference_accuracy"`
	FinancialAlignment     float64 `json:"financial_alignment"`
}

// AnalysisInput is the full input bundle for scoring one claim. Every field
// is produced by the extraction, similarity, or reconciliation services; the
// engine only validates and combines them.
type AnalysisInput struct {
	ClaimID string `json:"claim_id"`

	StatementDates    []string `json:"statement_dates"`
	TreatySlipDates   []string `json:"treaty_slip_dates"`
	GroundTruthDates  []string `json:"ground_truth_dates"`
	DateDiscrepancies []string `json:"date_discrepancies"`

	TreatyCashLossLimit   float64 `json:"treaty_cash_loss_limit"`
	StatementSurplus      float64 `json:"statement_surplus"`
	TreatyCommission      float64 `json:"treaty_commission"`
	StatementCommission   float64 `json:"statement_commission"`
	StatementClaimTotal   float64 `json:"statement_claim_total"`
	GroundTruthClaimTotal float64 `json:"ground_truth_claim_total"`

	SuspiciousPatterns []string `json:"suspicious_patterns"`

	StatementClaimCount   int      `json:"statement_claim_count"`
	GroundTruthClaimCount int      `json:"ground_truth_claim_count"`
	MissingClaims         []string `json:"missing_claims"`
	ExtraClaims           []string `json:"extra_claims"`

	PairingConfidence float64 `json:"pairing_confidence"`

	Statement   *DocumentSignals    `json:"statement_compliance"`
	TreatySlip  *DocumentSignals    `json:"treaty_slip_compliance"`
	GroundTruth *GroundTruthSignals `json:"ground_truth_matches"`
	Integrity   *IntegritySignals   `json:"data_integrity"`
	Indicators  *IndicatorSignals   `json:"reliability_indicators"`
}
