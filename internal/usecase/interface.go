package usecase

import (
	"context"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// ReportRepository defines the interface for persisting and reading produced
// analyses. The API layer depends on this interface, not on a concrete store.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go ReportRepository
type ReportRepository interface {
	SaveReport(ctx context.Context, report *domain.Report) error
	GetReport(ctx context.Context, id string) (*domain.Report, error)
	ListReports(ctx context.Context) ([]domain.ReportSummary, error)
	GetStats(ctx context.Context) (*domain.SystemStats, error)
	Ping(ctx context.Context) error
}
