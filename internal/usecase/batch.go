package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// batchConcurrency bounds the number of claims scored at once.
const batchConcurrency = 8

// BatchResult is the outcome of scoring one claim within a batch. Exactly one
// of Analysis and Err is set.
type BatchResult struct {
	ClaimID  string
	Analysis *domain.ComplianceAnalysis
	Err      error
}

// AnalyzeBatch scores independent claims in parallel. Claims share no state,
// so no ordering is needed between them; results come back in input order.
// A failing claim only marks its own slot — it never aborts the rest.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []domain.AnalysisInput) []BatchResult {
	results := make([]BatchResult, len(inputs))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BatchResult{ClaimID: in.ClaimID, Err: err}
				return nil
			}
			analysis, err := a.Analyze(in)
			results[i] = BatchResult{ClaimID: in.ClaimID, Analysis: analysis, Err: err}
			return nil
		})
	}

	// Goroutines never return an error; failures live in their result slot.
	_ = g.Wait()

	return results
}
