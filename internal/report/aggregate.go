package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/drivelog/internal/domain"
)

// TripSource is the slice of the trip repository the aggregator needs:
// a consistent read of every trip whose date falls in [start, end).
type TripSource interface {
	QueryRange(ctx context.Context, start, end time.Time) ([]domain.Trip, error)
}

// Aggregator rolls a period's trips up into a report. It is stateless apart
// from its collaborators, so any number of aggregations may run concurrently.
//
// This is the only summation routine in the program. Snapshot creation and
// live recomputation both go through Summarize, so a stored report and a
// fresh recomputation over the same range can only differ by trips added,
// edited, or deleted in between — never by divergent math.
type Aggregator struct {
	trips TripSource
	now   func() time.Time
}

// NewAggregator constructs an Aggregator reading trips from the given source.
func NewAggregator(trips TripSource) *Aggregator {
	return &Aggregator{trips: trips, now: time.Now}
}

// Summarize queries the period's trips and sums their driving time and
// distance. An empty trip set yields zero totals, not an error.
// The returned report carries no ID; persistence assigns one.
func (a *Aggregator) Summarize(ctx context.Context, p domain.Period) (domain.Report, error) {
	trips, err := a.trips.QueryRange(ctx, p.Start, p.End)
	if err != nil {
		return domain.Report{}, fmt.Errorf("report.Aggregator.Summarize: %w", err)
	}

	var seconds int64
	var km float64
	for _, t := range trips {
		seconds += t.DrivingTimeSeconds
		km += t.TotalDistanceKm
	}

	return domain.Report{
		StartDate:               p.Start,
		EndDate:                 p.End,
		TotalDrivingTimeSeconds: seconds,
		TotalDistanceKm:         km,
		GeneratedAt:             a.now(),
	}, nil
}
