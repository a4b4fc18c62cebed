package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/drivelog/internal/domain"
)

// ReportRepo defines the persistence operations for report snapshots.
// A stored report is the aggregation result as of generated_at; live totals
// for the same range are recomputed by the service layer, not stored.
type ReportRepo interface {
	// Create inserts a new report snapshot and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, report domain.Report) (domain.Report, error)

	// GetByID retrieves a single report by its UUID primary key.
	// Returns domain.ErrNotFound if no report with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Report, error)

	// List returns all reports ordered by start_date descending.
	List(ctx context.Context) ([]domain.Report, error)

	// Delete removes a report by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgReportRepo is the Postgres implementation of ReportRepo.
type pgReportRepo struct {
	db db
}

// NewReportRepo constructs a ReportRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReportRepo(db db) ReportRepo {
	return &pgReportRepo{db: db}
}

const reportColumns = `id, start_date, end_date, total_driving_time_seconds, total_distance_km, generated_at, created_at`

// Create inserts a new report row and returns the full persisted record.
func (r *pgReportRepo) Create(ctx context.Context, report domain.Report) (domain.Report, error) {
	const q = `
		INSERT INTO reports (start_date, end_date, total_driving_time_seconds, total_distance_km, generated_at)
		VALUES (@start_date, @end_date, @total_driving_time_seconds, @total_distance_km, @generated_at)
		RETURNING ` + reportColumns

	args := pgx.NamedArgs{
		"start_date":                 report.StartDate,
		"end_date":                   report.EndDate,
		"total_driving_time_seconds": report.TotalDrivingTimeSeconds,
		"total_distance_km":          report.TotalDistanceKm,
		"generated_at":               report.GeneratedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReport(row)
	if err != nil {
		return domain.Report{}, fmt.Errorf("repo.ReportRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a report by primary key.
func (r *pgReportRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	const q = `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanReport(row)
	if err != nil {
		return domain.Report{}, fmt.Errorf("repo.ReportRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all reports ordered by start_date descending (most recent first).
func (r *pgReportRepo) List(ctx context.Context) ([]domain.Report, error) {
	const q = `
		SELECT ` + reportColumns + `
		FROM reports
		ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ReportRepo.List: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReportRepo.List: scan: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReportRepo.List: rows: %w", err)
	}
	return reports, nil
}

// Delete removes a report by primary key.
func (r *pgReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reports WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ReportRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReportRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanReport maps a single database row into a domain.Report.
func scanReport(s scanner) (domain.Report, error) {
	var (
		rep domain.Report
		id  pgtype.UUID
	)
	err := s.Scan(&id, &rep.StartDate, &rep.EndDate, &rep.TotalDrivingTimeSeconds, &rep.TotalDistanceKm, &rep.GeneratedAt, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Report{}, domain.ErrNotFound
		}
		return domain.Report{}, err
	}
	rep.ID = uuid.UUID(id.Bytes)
	return rep, nil
}
