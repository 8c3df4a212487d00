package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// ErrReportNotFound is returned when no stored report matches the given id.
var ErrReportNotFound = errors.New("report not found")

// SQLiteReportStore persists produced analyses in a SQLite database. Each
// report row carries the summary columns used for listings plus the full
// analysis as JSON.
type SQLiteReportStore struct {
	db *sql.DB
}

// NewSQLiteReportStore opens the database and applies pending migrations.
func NewSQLiteReportStore(databasePath, migrationsURL string) (*SQLiteReportStore, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", databasePath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}

	// Single connection avoids SQLite locking issues.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db, databasePath, migrationsURL); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteReportStore{db: db}, nil
}

func runMigrations(db *sql.DB, databasePath, migrationsURL string) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, databasePath, driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance from %s: %w", migrationsURL, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}

// SaveReport stores one produced analysis.
func (s *SQLiteReportStore) SaveReport(ctx context.Context, report *domain.Report) error {
	analysisJSON, err := json.Marshal(report.Analysis)
	if err != nil {
		return fmt.Errorf("could not encode analysis for report %s: %w", report.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, claim_id, created_at, trust_score, risk_level, analysis)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.ID, report.ClaimID, report.CreatedAt.UTC(),
		report.Analysis.ValidationMetrics.TrustScore,
		string(report.Analysis.OverallRiskLevel),
		string(analysisJSON),
	)
	if err != nil {
		return fmt.Errorf("could not insert report %s: %w", report.ID, err)
	}
	return nil
}

// GetReport loads a stored report by id.
func (s *SQLiteReportStore) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, claim_id, created_at, analysis FROM reports WHERE id = ?`, id)

	var report domain.Report
	var analysisJSON string
	if err := row.Scan(&report.ID, &report.ClaimID, &report.CreatedAt, &analysisJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}
		return nil, fmt.Errorf("could not load report %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(analysisJSON), &report.Analysis); err != nil {
		return nil, fmt.Errorf("could not decode analysis for report %s: %w", id, err)
	}
	return &report, nil
}

// ListReports returns summaries of all stored reports, newest first.
func (s *SQLiteReportStore) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, claim_id, created_at, trust_score, risk_level
		 FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("could not list reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.ReportSummary, 0)
	for rows.Next() {
		var summary domain.ReportSummary
		var riskLevel string
		if err := rows.Scan(&summary.ID, &summary.ClaimID, &summary.CreatedAt, &summary.TrustScore, &riskLevel); err != nil {
			return nil, fmt.Errorf("could not scan report summary: %w", err)
		}
		summary.RiskLevel = domain.RiskLevel(riskLevel)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report summaries: %w", err)
	}
	return summaries, nil
}

// GetStats aggregates the stored reports.
func (s *SQLiteReportStore) GetStats(ctx context.Context) (*domain.SystemStats, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(trust_score), 0),
		        COALESCE(SUM(CASE WHEN risk_level = 'LOW' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN risk_level = 'MEDIUM' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN risk_level = 'HIGH' THEN 1 ELSE 0 END), 0)
		 FROM reports`)

	var stats domain.SystemStats
	if err := row.Scan(&stats.TotalReports, &stats.AvgTrustScore,
		&stats.LowRiskCount, &stats.MediumRiskCount, &stats.HighRiskCount); err != nil {
		return nil, fmt.Errorf("could not aggregate report stats: %w", err)
	}
	return &stats, nil
}

// Ping checks database connectivity.
func (s *SQLiteReportStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (s *SQLiteReportStore) Close() error {
	return s.db.Close()
}
