package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/service"
)

func TestExportService_Export(t *testing.T) {
	rep := summaryFor(domain.Period{
		Start: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	rep.ID = uuid.New()

	tripA := finishedTrip()
	tripA.Date = time.Date(2026, 2, 3, 7, 0, 0, 0, time.UTC)
	tripB := finishedTrip()
	tripB.Date = time.Date(2026, 2, 20, 18, 30, 0, 0, time.UTC)
	tripB.Path = nil

	var gotStart, gotEnd time.Time
	svc := service.NewExportService(
		&mockReportRepo{
			getByID: func(context.Context, uuid.UUID) (domain.Report, error) { return rep, nil },
		},
		&mockTripRepo{
			queryRange: func(_ context.Context, start, end time.Time) ([]domain.Trip, error) {
				gotStart, gotEnd = start, end
				return []domain.Trip{tripA, tripB}, nil
			},
		},
	)

	gotReport, rows, err := svc.Export(context.Background(), rep.ID)

	require.NoError(t, err)
	assert.Equal(t, rep, gotReport)
	assert.True(t, gotStart.Equal(rep.StartDate), "contributing trips come from the report's own range")
	assert.True(t, gotEnd.Equal(rep.EndDate))

	require.Len(t, rows, 2)
	assert.Equal(t, tripA.ID.String(), rows[0].TripID)
	assert.Equal(t, "2026-02-03T07:00:00Z", rows[0].Date)
	assert.Equal(t, tripA.DrivingTimeSeconds, rows[0].DrivingTimeSeconds)
	assert.Equal(t, tripA.TotalDistanceKm, rows[0].TotalDistanceKm)
	assert.Equal(t, len(tripA.Path), rows[0].FixCount)
	assert.Zero(t, rows[1].FixCount, "pathless trip exports a zero fix count")
}

func TestExportService_Export_EmptyRange(t *testing.T) {
	rep := summaryFor(domain.Period{
		Start: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	rep.ID = uuid.New()
	svc := service.NewExportService(
		&mockReportRepo{
			getByID: func(context.Context, uuid.UUID) (domain.Report, error) { return rep, nil },
		},
		&mockTripRepo{
			queryRange: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) {
				return nil, nil
			},
		},
	)

	_, rows, err := svc.Export(context.Background(), rep.ID)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExportService_Export_ReportNotFound(t *testing.T) {
	svc := service.NewExportService(
		&mockReportRepo{
			getByID: func(context.Context, uuid.UUID) (domain.Report, error) {
				return domain.Report{}, domain.ErrNotFound
			},
		},
		&mockTripRepo{},
	)

	_, _, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
