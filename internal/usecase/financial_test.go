package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

func TestCompareFinancials_CashLossLimit(t *testing.T) {
	tests := []struct {
		name             string
		treatyAmount     float64
		surplus          float64
		wantWithinLimits bool
		wantVariancePct  float64
		wantErr          bool
	}{
		{
			name:             "treaty exceeds surplus",
			treatyAmount:     2_800_000,
			surplus:          2_500_000,
			wantWithinLimits: false,
			wantVariancePct:  12.0,
		},
		{
			name:             "treaty within surplus",
			treatyAmount:     2_000_000,
			surplus:          2_500_000,
			wantWithinLimits: true,
			wantVariancePct:  -20.0,
		},
		{
			name:             "treaty equal to surplus is within limits",
			treatyAmount:     2_500_000,
			surplus:          2_500_000,
			wantWithinLimits: true,
			wantVariancePct:  0,
		},
		{
			name:             "both zero resolves to within limits",
			treatyAmount:     0,
			surplus:          0,
			wantWithinLimits: true,
			wantVariancePct:  0,
		},
		{
			name:         "zero surplus with nonzero treaty amount is indeterminate",
			treatyAmount: 1_000_000,
			surplus:      0,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareFinancials(FinancialInputs{
				TreatyCashLossLimit: tt.treatyAmount,
				StatementSurplus:    tt.surplus,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrIndeterminateRatio)
				return
			}

			require.NoError(t, err)
			check := result.CashLossLimit
			assert.Equal(t, tt.wantWithinLimits, check.WithinLimits)
			assert.InDelta(t, tt.wantVariancePct, check.VariancePercentage, 0.01)
			// The risk flag is always the negation of the limits check.
			assert.Equal(t, !check.WithinLimits, check.RiskFlag)
		})
	}
}

func TestCompareFinancials_Commissions(t *testing.T) {
	tests := []struct {
		name                string
		treatyCommission    float64
		statementCommission float64
		wantMatch           bool
		wantVarianceAmount  float64
		wantVariancePct     float64
		wantErr             bool
	}{
		{
			// The tolerance is strict: a difference of exactly 5000 is NOT a
			// match. This deliberately disagrees with the 5% risk rule and is
			// pinned here rather than reconciled.
			name:                "exact tolerance boundary is a mismatch",
			treatyCommission:    125_000,
			statementCommission: 120_000,
			wantMatch:           false,
			wantVarianceAmount:  5000,
			wantVariancePct:     4.17,
		},
		{
			name:                "difference just under tolerance matches",
			treatyCommission:    124_999,
			statementCommission: 120_000,
			wantMatch:           true,
			wantVarianceAmount:  4999,
			wantVariancePct:     4.17,
		},
		{
			name:                "statement larger than treaty gives negative variance",
			treatyCommission:    100_000,
			statementCommission: 110_000,
			wantMatch:           false,
			wantVarianceAmount:  -10_000,
			wantVariancePct:     -9.09,
		},
		{
			name:                "identical commissions",
			treatyCommission:    50_000,
			statementCommission: 50_000,
			wantMatch:           true,
			wantVarianceAmount:  0,
			wantVariancePct:     0,
		},
		{
			name:                "both zero resolves to zero variance",
			treatyCommission:    0,
			statementCommission: 0,
			wantMatch:           true,
			wantVarianceAmount:  0,
			wantVariancePct:     0,
		},
		{
			name:             "zero statement commission with nonzero treaty is indeterminate",
			treatyCommission: 3000,
			wantErr:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareFinancials(FinancialInputs{
				StatementSurplus:    1, // keep the cash loss check determinate
				TreatyCommission:    tt.treatyCommission,
				StatementCommission: tt.statementCommission,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrIndeterminateRatio)
				return
			}

			require.NoError(t, err)
			check := result.Commissions
			assert.Equal(t, tt.wantMatch, check.Match)
			assert.Equal(t, tt.wantVarianceAmount, check.VarianceAmount)
			assert.InDelta(t, tt.wantVariancePct, check.VariancePercentage, 0.01)
			// Match is defined purely by the absolute variance tolerance.
			assert.Equal(t, math.Abs(check.VarianceAmount) < CommissionTolerance, check.Match)
		})
	}
}

func TestCompareFinancials_ClaimAmounts(t *testing.T) {
	result, err := CompareFinancials(FinancialInputs{
		StatementSurplus:      1,
		StatementClaimTotal:   1_150_000,
		GroundTruthClaimTotal: 1_000_000,
		SuspiciousPatterns:    []string{"round-number clustering"},
	})
	require.NoError(t, err)

	check := result.ClaimAmounts
	assert.Equal(t, 150_000.0, check.Variance)
	assert.InDelta(t, 15.0, check.VariancePercentage, 0.01)
	assert.Equal(t, []string{"round-number clustering"}, check.SuspiciousPatterns)
}

func TestCompareFinancials_ClaimAmountsZeroGuard(t *testing.T) {
	_, err := CompareFinancials(FinancialInputs{
		StatementSurplus:      1,
		StatementClaimTotal:   500_000,
		GroundTruthClaimTotal: 0,
	})
	assert.ErrorIs(t, err, domain.ErrIndeterminateRatio)

	result, err := CompareFinancials(FinancialInputs{
		StatementSurplus:      1,
		StatementClaimTotal:   0,
		GroundTruthClaimTotal: 0,
	})
	require.NoError(t, err)
	assert.Zero(t, result.ClaimAmounts.VariancePercentage)
}

func TestRiskFlags(t *testing.T) {
	assert.False(t, CommissionRiskFlag(domain.CommissionCheck{VariancePercentage: 5.0}))
	assert.True(t, CommissionRiskFlag(domain.CommissionCheck{VariancePercentage: 5.01}))
	assert.True(t, CommissionRiskFlag(domain.CommissionCheck{VariancePercentage: -5.01}))

	assert.False(t, ClaimAmountRiskFlag(domain.ClaimAmountsCheck{VariancePercentage: 15.0}))
	assert.True(t, ClaimAmountRiskFlag(domain.ClaimAmountsCheck{VariancePercentage: 15.01}))
	assert.True(t, ClaimAmountRiskFlag(domain.ClaimAmountsCheck{VariancePercentage: -16.0}))
}
