package domain

import (
	"time"

	"github.com/google/uuid"
)

// PeriodKind identifies how a report's date range was selected.
type PeriodKind string

const (
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
	PeriodCustom  PeriodKind = "custom"
)

// Period is a resolved half-open date range [Start, End) backing a report.
// It is transient — produced by the period resolver, consumed by the
// aggregator, never persisted on its own.
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open range [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Report is the aggregated totals over all trips whose date falls in
// [StartDate, EndDate). A persisted report is a snapshot of the trip set at
// GeneratedAt; callers that need current totals recompute them through the
// same aggregation routine over the same range.
type Report struct {
	ID                      uuid.UUID `json:"id"`
	StartDate               time.Time `json:"start_date"`
	EndDate                 time.Time `json:"end_date"`
	TotalDrivingTimeSeconds int64     `json:"total_driving_time_seconds"`
	TotalDistanceKm         float64   `json:"total_distance_km"`
	GeneratedAt             time.Time `json:"generated_at"`
	CreatedAt               time.Time `json:"created_at"`
}

// ExportRow is a single trip line in a report export.
// It is a flat view: the export surface prepends the report totals itself.
type ExportRow struct {
	TripID             string
	Date               string // RFC 3339
	DrivingTimeSeconds int64
	TotalDistanceKm    float64
	FixCount           int
}
