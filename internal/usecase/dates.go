package usecase

import (
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// CompareDates cross-references the date sets from the three sources. Dates
// are compared as opaque strings: the same day written in two formats is a
// non-match, which callers must account for when extracting.
//
// Each entry of the left set contributes at most one match no matter how many
// entries of the right set equal it, but duplicate entries on the left each
// count separately.
func CompareDates(statement, treaty, groundTruth, discrepancies []string) domain.DateComparisonResult {
	matches := domain.DateMatches{
		StatementGTMatches:     countMatches(statement, groundTruth),
		TreatyGTMatches:        countMatches(treaty, groundTruth),
		StatementTreatyMatches: countMatches(statement, treaty),
	}

	// The denominator is the largest single set, once per pairwise
	// comparison. Three empty sets yield 0%, not a division by zero.
	totalPossible := max(len(statement), len(treaty), len(groundTruth))

	var matchPercentage float64
	if totalPossible > 0 {
		totalMatches := matches.StatementGTMatches + matches.TreatyGTMatches + matches.StatementTreatyMatches
		matchPercentage = float64(totalMatches) / float64(totalPossible*3) * 100
	}

	return domain.DateComparisonResult{
		StatementDates:   nonNil(statement),
		TreatySlipDates:  nonNil(treaty),
		GroundTruthDates: nonNil(groundTruth),
		Matches:          matches,
		Discrepancies:    nonNil(discrepancies),
		MatchPercentage:  matchPercentage,
	}
}

// countMatches counts entries of left that appear anywhere in right.
func countMatches(left, right []string) int {
	members := make(map[string]struct{}, len(right))
	for _, d := range right {
		members[d] = struct{}{}
	}

	count := 0
	for _, d := range left {
		if _, ok := members[d]; ok {
			count++
		}
	}
	return count
}

// nonNil normalises a nil slice to an empty one so the serialized result is
// stable regardless of how the input bundle was decoded.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
