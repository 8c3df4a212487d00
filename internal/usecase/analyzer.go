package usecase

import (
	"fmt"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// Analyzer is the sole entry point for scoring a claim. It is stateless:
// Analyze is a pure function of its input, so identical inputs always
// produce identical output.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the full compliance analysis for one claim. It fails
// atomically: on any typed error no partial result is returned. There is no
// recovery path inside the engine; a failure for one claim must not stop the
// caller from scoring others.
func (a *Analyzer) Analyze(in domain.AnalysisInput) (*domain.ComplianceAnalysis, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	dateComparison := CompareDates(in.StatementDates, in.TreatySlipDates, in.GroundTruthDates, in.DateDiscrepancies)

	financialComparison, err := CompareFinancials(FinancialInputs{
		TreatyCashLossLimit:   in.TreatyCashLossLimit,
		StatementSurplus:      in.StatementSurplus,
		TreatyCommission:      in.TreatyCommission,
		StatementCommission:   in.StatementCommission,
		StatementClaimTotal:   in.StatementClaimTotal,
		GroundTruthClaimTotal: in.GroundTruthClaimTotal,
		SuspiciousPatterns:    in.SuspiciousPatterns,
	})
	if err != nil {
		return nil, err
	}

	claimsCount, err := CompareClaimsCounts(in.StatementClaimCount, in.GroundTruthClaimCount, in.MissingClaims, in.ExtraClaims)
	if err != nil {
		return nil, err
	}

	groundTruthComparison := domain.GroundTruthComparisonResult{
		TotalClaimsComparison: claimsCount,
		DataIntegrity:         RateDataIntegrity(*in.Integrity),
	}

	status := domain.VerificationStatus{
		DatesVerified:       dateComparison.MatchPercentage > DateMatchThreshold,
		AmountsVerified:     financialComparison.CashLossLimit.WithinLimits,
		CommissionsVerified: financialComparison.Commissions.Match,
		ClaimsCountVerified: claimsCount.Match,
	}

	metrics := CalculateTrustScore(status, in.Statement.ComplianceScore, in.TreatySlip.ComplianceScore, *in.Indicators, dateComparison.MatchPercentage)

	statementCompliance := documentCompliance(*in.Statement)
	treatySlipCompliance := documentCompliance(*in.TreatySlip)

	return &domain.ComplianceAnalysis{
		OverallComplianceScore: (in.Statement.ComplianceScore + in.TreatySlip.ComplianceScore) / 2,
		OverallRiskLevel:       worseRisk(statementCompliance.RiskLevel, treatySlipCompliance.RiskLevel),
		PairingConfidence:      in.PairingConfidence,
		StatementCompliance:    statementCompliance,
		TreatySlipCompliance:   treatySlipCompliance,
		GroundTruthAnalysis: domain.GroundTruthSummary{
			MatchesCount:  len(in.GroundTruth.MatchedClaimIDs),
			AvgSimilarity: in.GroundTruth.AvgSimilarity,
			MaxSimilarity: in.GroundTruth.MaxSimilarity,
		},
		DateComparison:        dateComparison,
		FinancialComparison:   financialComparison,
		GroundTruthComparison: groundTruthComparison,
		ValidationMetrics:     metrics,
	}, nil
}

// documentCompliance derives the per-document sub-record. The risk level is
// computed from the document's compliance score; it is never taken from the
// input, so classification is always an output of the scoring rules.
func documentCompliance(signals domain.DocumentSignals) domain.DocumentCompliance {
	return domain.DocumentCompliance{
		ComplianceScore:       signals.ComplianceScore,
		RiskLevel:             riskLevelForScore(signals.ComplianceScore),
		RiskIndicators:        nonNil(signals.RiskIndicators),
		GroundTruthSimilarity: signals.GroundTruthSimilarity,
	}
}

func riskLevelForScore(score float64) domain.RiskLevel {
	switch {
	case score >= LowRiskScoreCutoff:
		return domain.RiskLevelLow
	case score >= MediumRiskScoreCutoff:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}

var riskSeverity = map[domain.RiskLevel]int{
	domain.RiskLevelLow:    0,
	domain.RiskLevelMedium: 1,
	domain.RiskLevelHigh:   2,
}

// worseRisk returns the more severe of two risk levels.
func worseRisk(a, b domain.RiskLevel) domain.RiskLevel {
	if riskSeverity[b] > riskSeverity[a] {
		return b
	}
	return a
}

func validateInput(in domain.AnalysisInput) error {
	if in.StatementClaimCount < 0 {
		return fmt.Errorf("%w: statement claim count %d is negative", domain.ErrInvalidInput, in.StatementClaimCount)
	}
	if in.GroundTruthClaimCount < 0 {
		return fmt.Errorf("%w: ground truth claim count %d is negative", domain.ErrInvalidInput, in.GroundTruthClaimCount)
	}

	amounts := []struct {
		name  string
		value float64
	}{
		{"treaty cash loss limit", in.TreatyCashLossLimit},
		{"statement surplus", in.StatementSurplus},
		{"treaty commission", in.TreatyCommission},
		{"statement commission", in.StatementCommission},
		{"statement claim total", in.StatementClaimTotal},
		{"ground truth claim total", in.GroundTruthClaimTotal},
	}
	for _, amount := range amounts {
		if amount.value < 0 {
			return fmt.Errorf("%w: %s %.2f is negative", domain.ErrInvalidInput, amount.name, amount.value)
		}
	}

	if in.Statement == nil {
		return fmt.Errorf("%w: statement compliance signals", domain.ErrUpstreamDataMissing)
	}
	if in.TreatySlip == nil {
		return fmt.Errorf("%w: treaty slip compliance signals", domain.ErrUpstreamDataMissing)
	}
	if in.GroundTruth == nil {
		return fmt.Errorf("%w: ground truth similarity signals", domain.ErrUpstreamDataMissing)
	}
	if in.Integrity == nil {
		return fmt.Errorf("%w: data integrity scores", domain.ErrUpstreamDataMissing)
	}
	if in.Indicators == nil {
		return fmt.Errorf("%w: reliability indicator signals", domain.ErrUpstreamDataMissing)
	}

	scores := []struct {
		name  string
		value float64
	}{
		{"statement compliance score", in.Statement.ComplianceScore},
		{"treaty slip compliance score", in.TreatySlip.ComplianceScore},
		{"completeness score", in.Integrity.CompletenessScore},
		{"accuracy score", in.Integrity.AccuracyScore},
		{"consistency score", in.Integrity.ConsistencyScore},
		{"data consistency indicator", in.Indicators.DataConsistency},
		{"cross reference accuracy indicator", in.Indicators.CrossReferenceAccuracy},
		{"financial alignment indicator", in.Indicators.FinancialAlignment},
	}
	for _, score := range scores {
		if score.value < 0 || score.value > 100 {
			return fmt.Errorf("%w: %s %.2f is outside [0,100]", domain.ErrInvalidInput, score.name, score.value)
		}
	}

	return nil
}
