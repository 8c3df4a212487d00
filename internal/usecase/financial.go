package usecase

import (
	"fmt"
	"math"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// FinancialInputs are the monetary fields consumed by CompareFinancials.
type FinancialInputs struct {
	TreatyCashLossLimit   float64
	StatementSurplus      float64
	TreatyCommission      float64
	StatementCommission   float64
	StatementClaimTotal   float64
	GroundTruthClaimTotal float64
	SuspiciousPatterns    []string
}

// CompareFinancials runs the cash loss limit, commission, and claim amount
// checks. A zero divisor resolves to zero variance when its numerator base
// case is also zero; otherwise the check is indeterminate and the comparator
// reports domain.ErrIndeterminateRatio instead of emitting Inf or NaN.
func CompareFinancials(in FinancialInputs) (domain.FinancialComparisonResult, error) {
	cashLoss, err := checkCashLossLimit(in.TreatyCashLossLimit, in.StatementSurplus)
	if err != nil {
		return domain.FinancialComparisonResult{}, err
	}

	commissions, err := checkCommissions(in.TreatyCommission, in.StatementCommission)
	if err != nil {
		return domain.FinancialComparisonResult{}, err
	}

	claimVariance := in.StatementClaimTotal - in.GroundTruthClaimTotal
	claimVariancePct, err := variancePercentage(claimVariance, in.GroundTruthClaimTotal)
	if err != nil {
		return domain.FinancialComparisonResult{}, fmt.Errorf("claim amounts check: %w", err)
	}

	return domain.FinancialComparisonResult{
		CashLossLimit: cashLoss,
		Commissions:   commissions,
		ClaimAmounts: domain.ClaimAmountsCheck{
			TotalClaimsStatement:   in.StatementClaimTotal,
			TotalClaimsGroundTruth: in.GroundTruthClaimTotal,
			Variance:               claimVariance,
			VariancePercentage:     claimVariancePct,
			SuspiciousPatterns:     nonNil(in.SuspiciousPatterns),
		},
	}, nil
}

func checkCashLossLimit(treatyAmount, surplus float64) (domain.CashLossLimitCheck, error) {
	check := domain.CashLossLimitCheck{
		TreatySlipAmount:       treatyAmount,
		StatementSurplusAmount: surplus,
	}

	if surplus == 0 {
		if treatyAmount != 0 {
			return domain.CashLossLimitCheck{}, fmt.Errorf("cash loss limit check: statement surplus is zero: %w", domain.ErrIndeterminateRatio)
		}
		check.WithinLimits = true
	} else {
		check.WithinLimits = treatyAmount <= surplus
		check.VariancePercentage = (treatyAmount - surplus) / surplus * 100
	}

	check.RiskFlag = !check.WithinLimits
	return check, nil
}

func checkCommissions(treatyCommission, statementCommission float64) (domain.CommissionCheck, error) {
	varianceAmount := treatyCommission - statementCommission
	variancePct, err := variancePercentage(varianceAmount, statementCommission)
	if err != nil {
		return domain.CommissionCheck{}, fmt.Errorf("commission check: %w", err)
	}

	return domain.CommissionCheck{
		TreatySlipCommission: treatyCommission,
		StatementCommission:  statementCommission,
		// Strict inequality: a variance of exactly the tolerance is a mismatch.
		Match:              math.Abs(varianceAmount) < CommissionTolerance,
		VarianceAmount:     varianceAmount,
		VariancePercentage: variancePct,
	}, nil
}

// CommissionRiskFlag reports whether the commission check exceeds its risk
// threshold. The boolean thresholds deliberately differ: Match uses an
// absolute tolerance while the risk flag is percentage-based.
func CommissionRiskFlag(check domain.CommissionCheck) bool {
	return math.Abs(check.VariancePercentage) > CommissionRiskThreshold
}

// ClaimAmountRiskFlag reports whether the claim amount variance exceeds its
// risk threshold.
func ClaimAmountRiskFlag(check domain.ClaimAmountsCheck) bool {
	return math.Abs(check.VariancePercentage) > ClaimAmountRiskThreshold
}

// variancePercentage computes variance/base*100 with the shared zero-guard.
func variancePercentage(variance, base float64) (float64, error) {
	if base == 0 {
		if variance == 0 {
			return 0, nil
		}
		return 0, domain.ErrIndeterminateRatio
	}
	return variance / base * 100, nil
}
