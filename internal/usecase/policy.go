package usecase

// Policy thresholds for the comparison and scoring rules. These are fixed
// business policy, not per-call configuration; changing one of them is a
// deliberate policy change.
const (
	// DateMatchThreshold is the match percentage a claim must exceed for its
	// dates to count as verified. Strictly greater than.
	DateMatchThreshold = 80.0

	// CommissionTolerance is the absolute commission difference below which
	// the two documents are considered to match. Strictly less than: a
	// difference of exactly this amount is NOT a match.
	CommissionTolerance = 5000.0

	// CommissionRiskThreshold flags the commission check as risky when the
	// absolute variance percentage exceeds it.
	CommissionRiskThreshold = 5.0

	// ClaimAmountRiskThreshold flags the claim amount check as risky when
	// the absolute variance percentage exceeds it.
	ClaimAmountRiskThreshold = 15.0

	// HighReliabilityCutoff and MediumReliabilityCutoff classify the mean of
	// the three data integrity scores.
	HighReliabilityCutoff   = 90.0
	MediumReliabilityCutoff = 70.0

	// LowRiskScoreCutoff and MediumRiskScoreCutoff map a 0-100 compliance
	// score to a risk level.
	LowRiskScoreCutoff    = 80.0
	MediumRiskScoreCutoff = 60.0
)

// Trust score composition weights. (base + adjustments) is divided by
// trustScoreDivisor so the maximum attainable raw value maps to exactly 100.
const (
	complianceWeight  = 0.3
	trustScoreDivisor = 1.6
)
