package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

func TestAnalyzer_AnalyzeBatch(t *testing.T) {
	analyzer := NewAnalyzer()

	good := validInput()
	good.ClaimID = "CLM-GOOD"

	bad := validInput()
	bad.ClaimID = "CLM-BAD"
	bad.StatementClaimCount = -1

	alsoGood := validInput()
	alsoGood.ClaimID = "CLM-ALSO-GOOD"

	results := analyzer.AnalyzeBatch(context.Background(), []domain.AnalysisInput{good, bad, alsoGood})

	require.Len(t, results, 3)

	// Results come back in input order.
	assert.Equal(t, "CLM-GOOD", results[0].ClaimID)
	assert.Equal(t, "CLM-BAD", results[1].ClaimID)
	assert.Equal(t, "CLM-ALSO-GOOD", results[2].ClaimID)

	// One bad claim never blocks the others.
	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Analysis)
	assert.ErrorIs(t, results[1].Err, domain.ErrInvalidInput)
	assert.Nil(t, results[1].Analysis)
	assert.NoError(t, results[2].Err)
	assert.NotNil(t, results[2].Analysis)
}

func TestAnalyzer_AnalyzeBatch_Empty(t *testing.T) {
	analyzer := NewAnalyzer()

	results := analyzer.AnalyzeBatch(context.Background(), nil)

	assert.Empty(t, results)
}

func TestAnalyzer_AnalyzeBatch_MatchesSingleAnalyze(t *testing.T) {
	analyzer := NewAnalyzer()
	input := validInput()

	single, err := analyzer.Analyze(input)
	require.NoError(t, err)

	results := analyzer.AnalyzeBatch(context.Background(), []domain.AnalysisInput{input})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	assert.Equal(t, single, results[0].Analysis)
}

func TestAnalyzer_AnalyzeBatch_CancelledContext(t *testing.T) {
	analyzer := NewAnalyzer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := analyzer.AnalyzeBatch(ctx, []domain.AnalysisInput{validInput()})

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.Nil(t, results[0].Analysis)
}
