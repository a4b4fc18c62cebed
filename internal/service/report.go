package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/repo"
	"github.com/pkordes/drivelog/internal/report"
)

// Summarizer is the aggregation routine both report creation and live
// recomputation share. *report.Aggregator satisfies it.
type Summarizer interface {
	Summarize(ctx context.Context, p domain.Period) (domain.Report, error)
}

// ReportParams selects the date range for a new report. Kind decides which
// of the remaining fields are read.
type ReportParams struct {
	Kind  domain.PeriodKind
	Year  int        // monthly, yearly
	Month time.Month // monthly
	Start time.Time  // custom
	End   time.Time  // custom
}

// ReportService implements business logic for report snapshots.
type ReportService struct {
	reports repo.ReportRepo
	agg     Summarizer
}

// NewReportService constructs a ReportService backed by the provided repo
// and aggregation routine.
func NewReportService(reports repo.ReportRepo, agg Summarizer) *ReportService {
	return &ReportService{reports: reports, agg: agg}
}

// Create resolves the requested period, aggregates the trips inside it, and
// persists the result as a snapshot.
func (s *ReportService) Create(ctx context.Context, params ReportParams) (domain.Report, error) {
	period, err := resolvePeriod(params)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Create: %w", err)
	}

	summary, err := s.agg.Summarize(ctx, period)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Create: %w", err)
	}

	created, err := s.reports.Create(ctx, summary)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Create: %w", err)
	}
	return created, nil
}

// Get returns a stored report snapshot. With live set, the totals and
// GeneratedAt are recomputed from the current trip set over the stored
// range — through the same Summarize routine that built the snapshot — and
// the refreshed values are returned without being persisted.
func (s *ReportService) Get(ctx context.Context, id uuid.UUID, live bool) (domain.Report, error) {
	stored, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Get: %w", err)
	}
	if !live {
		return stored, nil
	}

	fresh, err := s.agg.Summarize(ctx, domain.Period{
		Kind:  domain.PeriodCustom,
		Start: stored.StartDate,
		End:   stored.EndDate,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Get: %w", err)
	}

	stored.TotalDrivingTimeSeconds = fresh.TotalDrivingTimeSeconds
	stored.TotalDistanceKm = fresh.TotalDistanceKm
	stored.GeneratedAt = fresh.GeneratedAt
	return stored, nil
}

// List returns all stored reports, most recent range first.
func (s *ReportService) List(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.List: %w", err)
	}
	return reports, nil
}

// Delete removes a stored report by ID.
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ReportService.Delete: %w", err)
	}
	return nil
}

// resolvePeriod validates params and maps them to a concrete period.
func resolvePeriod(params ReportParams) (domain.Period, error) {
	switch params.Kind {
	case domain.PeriodMonthly:
		if params.Year < 1 {
			return domain.Period{}, fmt.Errorf("%w: year is required", domain.ErrValidation)
		}
		if params.Month < time.January || params.Month > time.December {
			return domain.Period{}, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
		}
		return report.Monthly(params.Year, params.Month), nil

	case domain.PeriodYearly:
		if params.Year < 1 {
			return domain.Period{}, fmt.Errorf("%w: year is required", domain.ErrValidation)
		}
		return report.Yearly(params.Year), nil

	case domain.PeriodCustom:
		if params.Start.IsZero() {
			return domain.Period{}, fmt.Errorf("%w: start is required for a custom range", domain.ErrValidation)
		}
		return report.Custom(params.Start, params.End), nil

	default:
		return domain.Period{}, fmt.Errorf("%w: unknown report kind %q", domain.ErrValidation, params.Kind)
	}
}
