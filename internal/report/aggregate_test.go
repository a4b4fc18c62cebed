package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/report"
)

// mockTripSource is a hand-written test double for report.TripSource.
type mockTripSource struct {
	queryRange func(ctx context.Context, start, end time.Time) ([]domain.Trip, error)
}

func (m *mockTripSource) QueryRange(ctx context.Context, start, end time.Time) ([]domain.Trip, error) {
	return m.queryRange(ctx, start, end)
}

// compile-time check: mockTripSource must satisfy report.TripSource.
var _ report.TripSource = (*mockTripSource)(nil)

func fixedTrips(trips ...domain.Trip) *mockTripSource {
	return &mockTripSource{
		queryRange: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) {
			return trips, nil
		},
	}
}

func TestSummarize_EmptyTripSet_ZeroTotals(t *testing.T) {
	agg := report.NewAggregator(fixedTrips())

	got, err := agg.Summarize(context.Background(), report.Monthly(2026, time.April))

	require.NoError(t, err)
	assert.EqualValues(t, 0, got.TotalDrivingTimeSeconds)
	assert.Equal(t, 0.0, got.TotalDistanceKm)
	assert.False(t, got.GeneratedAt.IsZero(), "GeneratedAt should be stamped")
}

func TestSummarize_SumsDrivingTimeAndDistance(t *testing.T) {
	agg := report.NewAggregator(fixedTrips(
		domain.Trip{DrivingTimeSeconds: 3600, TotalDistanceKm: 10.0},
		domain.Trip{DrivingTimeSeconds: 1800, TotalDistanceKm: 5.5},
	))

	got, err := agg.Summarize(context.Background(), report.Yearly(2026))

	require.NoError(t, err)
	assert.EqualValues(t, 5400, got.TotalDrivingTimeSeconds)
	assert.InDelta(t, 15.5, got.TotalDistanceKm, 1e-9)
}

func TestSummarize_CarriesPeriodBounds(t *testing.T) {
	p := report.Monthly(2024, time.February)
	agg := report.NewAggregator(fixedTrips())

	got, err := agg.Summarize(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(p.Start))
	assert.True(t, got.EndDate.Equal(p.End))
}

func TestSummarize_QueriesExactlyTheResolvedRange(t *testing.T) {
	p := report.Monthly(2024, time.February)
	var gotStart, gotEnd time.Time
	src := &mockTripSource{
		queryRange: func(_ context.Context, start, end time.Time) ([]domain.Trip, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}

	_, err := report.NewAggregator(src).Summarize(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, gotStart.Equal(p.Start))
	assert.True(t, gotEnd.Equal(p.End))
}

func TestSummarize_PropagatesStorageError(t *testing.T) {
	boom := errors.New("query failed")
	src := &mockTripSource{
		queryRange: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) {
			return nil, boom
		},
	}

	_, err := report.NewAggregator(src).Summarize(context.Background(), report.Yearly(2026))

	assert.ErrorIs(t, err, boom)
}
