package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/repo"
)

// ExportService assembles a report together with its contributing trips for
// the export surface to format. The service only gathers and flattens the
// data; formatting (CSV or JSON) is the handler's job.
type ExportService struct {
	reports repo.ReportRepo
	trips   repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(reports repo.ReportRepo, trips repo.TripRepo) *ExportService {
	return &ExportService{reports: reports, trips: trips}
}

// Export returns the stored report and one row per contributing trip,
// oldest trip first. Contributing trips are resolved from the report's own
// date range, so the rows always match the range the totals were summed
// over — though not necessarily the totals themselves, if trips were added
// or removed after the snapshot was taken.
func (s *ExportService) Export(ctx context.Context, reportID uuid.UUID) (domain.Report, []domain.ExportRow, error) {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return domain.Report{}, nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	trips, err := s.trips.QueryRange(ctx, rep.StartDate, rep.EndDate)
	if err != nil {
		return domain.Report{}, nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, domain.ExportRow{
			TripID:             t.ID.String(),
			Date:               t.Date.UTC().Format(time.RFC3339),
			DrivingTimeSeconds: t.DrivingTimeSeconds,
			TotalDistanceKm:    t.TotalDistanceKm,
			FixCount:           len(t.Path),
		})
	}
	return rep, rows, nil
}
