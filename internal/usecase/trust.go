package usecase

import (
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// CalculateTrustScore combines the four verification booleans with the two
// per-document compliance scores into the aggregate trust score. The weights
// are fixed: (100 + 0.3*100 + 0.3*100) / 1.6 caps the raw maximum at exactly
// 100, and the min keeps the guarantee explicit.
func CalculateTrustScore(status domain.VerificationStatus, statementScore, treatyScore float64, indicators domain.IndicatorSignals, dateMatchPercentage float64) domain.ValidationMetrics {
	verificationCount := 0
	for _, verified := range []bool{
		status.DatesVerified,
		status.AmountsVerified,
		status.CommissionsVerified,
		status.ClaimsCountVerified,
	} {
		if verified {
			verificationCount++
		}
	}

	baseTrustScore := float64(verificationCount) / 4 * 100
	complianceAdjustment := statementScore*complianceWeight + treatyScore*complianceWeight

	trustScore := (baseTrustScore + complianceAdjustment) / trustScoreDivisor
	if trustScore > 100 {
		trustScore = 100
	}

	return domain.ValidationMetrics{
		TrustScore: trustScore,
		ReliabilityIndicators: domain.ReliabilityIndicators{
			DataConsistency:        indicators.DataConsistency,
			CrossReferenceAccuracy: indicators.CrossReferenceAccuracy,
			FinancialAlignment:     indicators.FinancialAlignment,
			TemporalConsistency:    dateMatchPercentage,
		},
		VerificationStatus: status,
	}
}
