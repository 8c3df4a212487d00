package usecase

import (
	"fmt"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// CompareClaimsCounts compares the statement claim count with the ground
// truth claim count. The missing/extra identifier lists come from the
// upstream reconciler and are carried through, not derived here.
func CompareClaimsCounts(statementCount, groundTruthCount int, missing, extra []string) (domain.ClaimsCountCheck, error) {
	variance := statementCount - groundTruthCount
	variancePct, err := variancePercentage(float64(variance), float64(groundTruthCount))
	if err != nil {
		return domain.ClaimsCountCheck{}, fmt.Errorf("claims count check: %w", err)
	}

	return domain.ClaimsCountCheck{
		StatementClaims:    statementCount,
		GroundTruthClaims:  groundTruthCount,
		Match:              statementCount == groundTruthCount,
		Variance:           variance,
		VariancePercentage: variancePct,
		MissingClaims:      nonNil(missing),
		ExtraClaims:        nonNil(extra),
	}, nil
}

// RateDataIntegrity classifies the mean of the three upstream integrity
// scores. This mean-of-three rule is the single source of the rating.
func RateDataIntegrity(signals domain.IntegritySignals) domain.DataIntegrityScores {
	mean := (signals.CompletenessScore + signals.AccuracyScore + signals.ConsistencyScore) / 3

	rating := domain.ReliabilityLow
	switch {
	case mean >= HighReliabilityCutoff:
		rating = domain.ReliabilityHigh
	case mean >= MediumReliabilityCutoff:
		rating = domain.ReliabilityMedium
	}

	return domain.DataIntegrityScores{
		CompletenessScore: signals.CompletenessScore,
		AccuracyScore:     signals.AccuracyScore,
		ConsistencyScore:  signals.ConsistencyScore,
		ReliabilityRating: rating,
	}
}
